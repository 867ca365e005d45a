package signature

// Extract scans every document and returns a fresh table with the shapes of
// all commands found. The result does not depend on the order of documents
// except for the order of names and shapes.
func Extract(docs ...string) *Table {
	t := NewTable()
	for _, doc := range docs {
		ExtractInto(t, doc)
	}

	return t
}

// ExtractInto scans doc and adds its commands to t.
//
// Every \name in doc counts, including commands inside other commands'
// parameters. The shape is guessed from the text right after the name, see
// scan.
func ExtractInto(t *Table, doc string) {
	runes := []rune(doc)

	for i := 0; i < len(runes); i++ {
		if runes[i] != '\\' {
			continue
		}

		end := i + 1
		for end < len(runes) && isLetter(runes[end]) {
			end++
		}

		if end == i+1 {
			continue
		}

		t.Add(string(runes[i+1:end]), scan(runes[end:]))
		i = end - 1
	}
}

type scanState int

const (
	awaitingGroup scanState = iota // right after the name or a closed group
	insideGroup
)

// scan counts parameter groups directly following a command. A group opens
// with {, [ or a space and closes with }, ] or a space; a closing ] counts as
// a bracket parameter and anything else as a brace parameter. Groups must be
// adjacent: the scan stops at the first character after a closed group which
// does not open another one, or at the end of input.
//
// This is a heuristic, not a grammar: a space opens a group, so "\alpha + x"
// reads as one brace parameter, and the scan may run into unrelated text.
func scan(rest []rune) Shape {
	var shape Shape
	state := awaitingGroup

	for _, c := range rest {
		switch state {
		case awaitingGroup:
			if c != '{' && c != '[' && c != ' ' {
				return shape
			}

			state = insideGroup
		case insideGroup:
			switch c {
			case '}', ' ':
				shape.Braces++
				state = awaitingGroup
			case ']':
				shape.Brackets++
				state = awaitingGroup
			}
		}
	}

	return shape
}

// isLetter returns true for a letter allowed in a command name
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}
