package props

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestDefaultsForEveryTool(t *testing.T) {
	s := NewStore(nil, "")
	for _, tool := range Tools {
		p, ok := s.Get(tool)
		require.True(t, ok, tool)
		assert.Equal(t, float32(1), p.Opacity)
	}
	eraser, _ := s.Get(Eraser)
	assert.Empty(t, eraser.StrokeColor)
	assert.Equal(t, float32(10), eraser.StrokeWidth)

	rect, _ := s.Get(Rectangle)
	assert.Equal(t, "transparent", rect.BackgroundColor)

	_, ok := s.Get("hand")
	assert.False(t, ok)
}

func TestUpdateMergesPartial(t *testing.T) {
	s := NewStore(nil, "")
	p, err := s.Update(Pen, Update{StrokeWidth: ptr(float32(6))})
	require.NoError(t, err)

	assert.Equal(t, float32(6), p.StrokeWidth)
	assert.Equal(t, "#0f172a", p.StrokeColor)

	p, err = s.Update(Pen, Update{StrokeColor: ptr("#2563eb")})
	require.NoError(t, err)
	assert.Equal(t, float32(6), p.StrokeWidth, "earlier update kept")
	assert.Equal(t, "#2563eb", p.StrokeColor)
}

func TestUpdateRejectsToolsWithoutProperties(t *testing.T) {
	s := NewStore(nil, "")
	_, err := s.Update("pointer", Update{Opacity: ptr(float32(0.5))})
	assert.True(t, errors.Is(err, ErrNoProperties))
	assert.True(t, errors.Is(s.Reset("text"), ErrNoProperties))
}

func TestPersistedAcrossStores(t *testing.T) {
	prefs := test.NewApp().Preferences()

	first := NewStore(prefs, "")
	_, err := first.Update(Rectangle, Update{BackgroundColor: ptr("#fee2e2"), CornerRadius: ptr(float32(8))})
	require.NoError(t, err)
	assert.NotEmpty(t, prefs.String(DefaultKey))

	second := NewStore(prefs, "")
	rect, _ := second.Get(Rectangle)
	assert.Equal(t, "#fee2e2", rect.BackgroundColor)
	assert.Equal(t, float32(8), rect.CornerRadius)
	assert.Equal(t, "#0f172a", rect.StrokeColor)

	pen, _ := second.Get(Pen)
	def, _ := Default(Pen)
	assert.Equal(t, def, pen)
}

func TestEmptyColoursSurviveReload(t *testing.T) {
	prefs := test.NewApp().Preferences()

	first := NewStore(prefs, "")
	_, err := first.Update(Rectangle, Update{StrokeColor: ptr(""), BackgroundColor: ptr("")})
	require.NoError(t, err)

	rect, _ := NewStore(prefs, "").Get(Rectangle)
	assert.Empty(t, rect.StrokeColor)
	assert.Empty(t, rect.BackgroundColor)
}

func TestLoadMergesMissingToolsWithDefaults(t *testing.T) {
	prefs := test.NewApp().Preferences()
	prefs.SetString("custom", `{"line":{"strokeWidth":4},"bogus":{"opacity":0.1}}`)

	s := NewStore(prefs, "custom")
	line, _ := s.Get(Line)
	assert.Equal(t, float32(4), line.StrokeWidth)
	assert.Equal(t, "#0f172a", line.StrokeColor)
	assert.Equal(t, float32(1), line.Opacity)

	_, ok := s.All()["bogus"]
	assert.False(t, ok)
	assert.Len(t, s.All(), len(Tools))
}

func TestLoadIgnoresCorruptData(t *testing.T) {
	prefs := test.NewApp().Preferences()
	prefs.SetString(DefaultKey, "{not json")

	s := NewStore(prefs, "")
	arrow, _ := s.Get(Arrow)
	def, _ := Default(Arrow)
	assert.Equal(t, def, arrow)
}

func TestResetAndResetAll(t *testing.T) {
	s := NewStore(test.NewApp().Preferences(), "")
	_, _ = s.Update(Pen, Update{Opacity: ptr(float32(0.2))})
	_, _ = s.Update(Arrow, Update{Opacity: ptr(float32(0.3))})

	require.NoError(t, s.Reset(Pen))
	pen, _ := s.Get(Pen)
	assert.Equal(t, float32(1), pen.Opacity)
	arrow, _ := s.Get(Arrow)
	assert.Equal(t, float32(0.3), arrow.Opacity)

	s.ResetAll()
	arrow, _ = s.Get(Arrow)
	assert.Equal(t, float32(1), arrow.Opacity)
}

func TestStyleSnapshot(t *testing.T) {
	s := NewStore(nil, "")
	_, _ = s.Update(Rectangle, Update{CornerRadius: ptr(float32(4))})

	st := s.Style(Rectangle)
	assert.Equal(t, "#0f172a", st.Stroke)
	assert.Equal(t, "transparent", st.Fill)
	assert.Equal(t, float32(4), st.CornerRadius)

	_, _ = s.Update(Rectangle, Update{CornerRadius: ptr(float32(9))})
	assert.Equal(t, float32(4), st.CornerRadius)
}
