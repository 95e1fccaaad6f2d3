package models

const (
	ModalidadeTexas = "Texas"
	ModalidadeOmaha = "Omaha"
)

// NormalizeModalidade coerces any value that is not exactly "Omaha" to
// "Texas". Applied at every write and recompute boundary.
func NormalizeModalidade(m string) string {
	if m == ModalidadeOmaha {
		return ModalidadeOmaha
	}
	return ModalidadeTexas
}
