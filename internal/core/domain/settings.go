package domain

// Default retrieval and assembly parameters.
const (
	DefaultRetrieveTopK        = 50
	DefaultSimilarityThreshold = 0.2
	DefaultAssembleCap         = 5
)

// Settings holds the resolved pipeline configuration. Values come from the
// TOML config store merged over these defaults.
type Settings struct {
	// CatalogDriver selects the catalog store: "file" or "sqlite".
	CatalogDriver string `toml:"catalog_driver"`

	// CatalogPath is the catalog JSON file (file driver) or SQLite
	// database path (sqlite driver).
	CatalogPath string `toml:"catalog_path"`

	// EmbeddingsPath is the optional item-embeddings sidecar file for the
	// file driver.
	EmbeddingsPath string `toml:"embeddings_path"`

	// EmbeddingModel names the query encoder. Must be present in the
	// model registry; empty disables the embedding path.
	EmbeddingModel string `toml:"embedding_model"`

	// EmbeddingBaseURL is the encoder API base URL.
	EmbeddingBaseURL string `toml:"embedding_base_url"`

	// RankingModelPath points at the trained ranking model file. Empty or
	// missing falls back to heuristic scoring.
	RankingModelPath string `toml:"ranking_model_path"`

	// ExplainModel names the LLM used for explanation text. Empty
	// disables LLM explanations.
	ExplainModel string `toml:"explain_model"`

	// RetrieveTopK is how many candidate items retrieval returns.
	RetrieveTopK int `toml:"retrieve_top_k"`

	// SimilarityThreshold is the embedding-path score cutoff.
	SimilarityThreshold float64 `toml:"similarity_threshold"`

	// AssembleCap caps each role partition before combination.
	AssembleCap int `toml:"assemble_cap"`

	// TopN is the default number of recommendations returned.
	TopN int `toml:"top_n"`
}

// DefaultSettings returns the settings used when no configuration exists.
func DefaultSettings() Settings {
	return Settings{
		CatalogDriver:       "file",
		CatalogPath:         "items.json",
		RetrieveTopK:        DefaultRetrieveTopK,
		SimilarityThreshold: DefaultSimilarityThreshold,
		AssembleCap:         DefaultAssembleCap,
		TopN:                DefaultTopN,
	}
}
