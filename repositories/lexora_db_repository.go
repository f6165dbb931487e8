package repositories

// LexoraDbRepository groups all queries against the lexora database. Methods
// are spread over the per-resource files in this package.
type LexoraDbRepository struct{}

func NewLexoraDbRepository() *LexoraDbRepository {
	return &LexoraDbRepository{}
}
