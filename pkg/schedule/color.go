package schedule

// Palette is the fixed set of course colors.
var Palette = [...]string{
	"blue",
	"green",
	"purple",
	"orange",
	"pink",
	"indigo",
	"red",
	"teal",
	"yellow",
	"cyan",
}

// CourseColor picks a palette color from the first character of the course
// code. The same code always gets the same color.
func CourseColor(code string) string {
	for _, r := range code {
		return Palette[int(r)%len(Palette)]
	}
	return Palette[0]
}
