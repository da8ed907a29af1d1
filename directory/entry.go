package directory

// Entry is a single speed-dial assignment: a code unique within its owning
// directory and the phone number it dials.
type Entry struct {
	Code   string
	Number string
}
