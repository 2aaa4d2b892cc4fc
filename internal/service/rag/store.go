package rag

import (
	"math"
	"sort"
	"strings"

	"github.com/james-bowman/nlp"
	"github.com/james-bowman/nlp/measures/pairwise"
	"gonum.org/v1/gonum/mat"
)

const DefaultTopK = 3

// Documents is the fixed competition knowledge base.
var Documents = []string{
	"The 13th International Ignacy Jan Paderewski Piano Competition is held in Bydgoszcz, Poland, from November 9 to 23, 2025.",
	"Schedule: November 9 - Inaugural Concert; November 10-13 - Stage I; November 14-16 - Stage II; November 18-19 - Semi-Final; November 21-22 - Final; November 23 - Awards.",
	"Prizes: 1st €40,000; 2nd €25,000; 3rd €15,000; 4th €10,000; 5th €5,000.",
	"Repertoire: Preliminary (Etudes, sonata), Stage I (style diversity), Stage II (Paderewski + free), Semi-Final (Herdzin piece + Mozart concerto), Final (major concerto).",
}

// Store ranks documents against a query by TF-IDF cosine similarity. It is
// built once and read-only afterwards.
type Store struct {
	docs     []string
	pipeline *nlp.Pipeline
	vectors  []mat.Vector
}

// NewStore fits the vocabulary and idf weights on docs.
func NewStore(docs []string) *Store {
	s := &Store{docs: docs}
	if len(docs) == 0 {
		return s
	}

	s.pipeline = nlp.NewPipeline(nlp.NewCountVectoriser(), nlp.NewTfidfTransformer())
	matrix, err := s.pipeline.FitTransform(docs...)
	if err != nil {
		s.pipeline = nil
		return s
	}
	if terms, _ := matrix.Dims(); terms == 0 {
		s.pipeline = nil
		return s
	}

	s.vectors = make([]mat.Vector, len(docs))
	for i := range docs {
		s.vectors[i] = column(matrix, i)
	}
	return s
}

// NewDefaultStore indexes Documents.
func NewDefaultStore() *Store {
	return NewStore(Documents)
}

// Retrieve returns up to k documents, most similar first. Equal scores
// favour later documents.
func (s *Store) Retrieve(query string, k int) []string {
	if k <= 0 || len(s.docs) == 0 {
		return []string{}
	}

	scores := s.score(query)

	order := make([]int, len(s.docs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if scores[order[a]] != scores[order[b]] {
			return scores[order[a]] > scores[order[b]]
		}
		return order[a] > order[b]
	})

	if k > len(order) {
		k = len(order)
	}
	out := make([]string, 0, k)
	for _, idx := range order[:k] {
		out = append(out, s.docs[idx])
	}
	return out
}

// score returns the cosine similarity of query to every document. Queries
// sharing no terms with the corpus score 0 everywhere.
func (s *Store) score(query string) []float64 {
	scores := make([]float64, len(s.docs))
	if s.pipeline == nil {
		return scores
	}

	matrix, err := s.pipeline.Transform(query)
	if err != nil {
		return scores
	}
	q := column(matrix, 0)
	if mat.Norm(q, 2) == 0 {
		return scores
	}

	for i, vec := range s.vectors {
		sim := pairwise.CosineSimilarity(q, vec)
		if math.IsNaN(sim) {
			sim = 0
		}
		scores[i] = sim
	}
	return scores
}

func column(m mat.Matrix, j int) mat.Vector {
	rows, _ := m.Dims()
	return mat.NewVecDense(rows, mat.Col(nil, j, m))
}

// GenerateResponse renders retrieved documents as an answer. Documents
// carrying predictions are left out.
func GenerateResponse(docs []string) string {
	cleaned := make([]string, 0, len(docs))
	for _, doc := range docs {
		lower := strings.ToLower(doc)
		if strings.Contains(lower, "predictions:") || strings.Contains(lower, "prognoza:") {
			continue
		}
		cleaned = append(cleaned, doc)
	}

	context := "Brak dopasowanego kontekstu."
	if len(cleaned) > 0 {
		context = strings.Join(cleaned, "\n")
	}
	return "Informacje z kontekstu RAG:\n" + context
}
