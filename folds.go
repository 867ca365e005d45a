package texpatch

// Fold is a foldable region between \begin{Name} and the matching \end{Name}.
// Start is the offset of \begin, End the end offset of \end.
type Fold struct {
	Name  string
	Start int
	End   int
}

// Folds pairs environment tokens into foldable regions, innermost first. An
// \end without a matching \begin is ignored, as is a \begin left open.
func Folds(tokens []Token) []Fold {
	var open []Token
	var folds []Fold

	for _, t := range tokens {
		switch t.Kind {
		case EnvironmentStartToken:
			open = append(open, t)
		case EnvironmentEndToken:
			for i := len(open) - 1; i >= 0; i-- {
				if open[i].Name != t.Name {
					continue
				}

				folds = append(folds, Fold{Name: t.Name, Start: open[i].Start, End: t.End})
				open = open[:i]
				break
			}
		}
	}

	return folds
}
