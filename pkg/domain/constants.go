package domain

// Bounds for the dice count and face values.
const (
	MinDice = 1
	MaxDice = 8

	MinFace = 1
	MaxFace = 6
)

// faceGlyphs maps face values 1-6 to the Unicode die faces. Index 0 unused.
var faceGlyphs = [MaxFace + 1]string{"", "⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// FaceGlyph returns the die-face glyph for a face value in [1,6].
// Out-of-range values render as "?" so a corrupt face is visible, not invisible.
func FaceGlyph(face int) string {
	if face < MinFace || face > MaxFace {
		return "?"
	}
	return faceGlyphs[face]
}
