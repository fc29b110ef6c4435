// Package extraction turns unstructured purchase-order text into a
// structured record.
//
// The engine runs a single synchronous pass over an already-obtained
// text string: independent field extractors locate the order metadata,
// supplier block and payment terms; the item-table parser finds and
// parses the line-item table; totals are aggregated and reconciled
// against the document-level total; finally a confidence score measures
// how much of the expected structure was found.
//
// The engine targets one fixed document layout family (see Layout) and
// degrades gracefully when the text deviates from it: missing fields
// stay empty, a missing table yields an empty item list, and the
// confidence score drops. The only hard failure is ErrEmptyDocument for
// input below MinDocumentLength characters.
//
// Extraction is a pure function of its input: the engine keeps no state
// across calls and is safe to use concurrently on independent inputs.
package extraction

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ocextract/internal/logger"
	"ocextract/pkg/models"
)

// MinDocumentLength is the minimum trimmed input length, in characters,
// accepted by Extract.
const MinDocumentLength = 20

// Engine extracts structured purchase-order records from plain text.
type Engine struct {
	buyer    models.Buyer
	layout   Layout
	pat      *patterns
	criteria []Criterion
	log      zerolog.Logger
}

// NewEngine creates an engine for the standard OC layout. The buyer
// profile is injected configuration and is copied into every record.
func NewEngine(buyer models.Buyer) *Engine {
	engine, err := NewEngineWithLayout(buyer, DefaultLayout())
	if err != nil {
		// DefaultLayout always compiles.
		panic(err)
	}
	return engine
}

// NewEngineWithLayout creates an engine for a custom document layout.
func NewEngineWithLayout(buyer models.Buyer, layout Layout) (*Engine, error) {
	pat, err := compileLayout(layout)
	if err != nil {
		return nil, err
	}
	return &Engine{
		buyer:    buyer,
		layout:   layout,
		pat:      pat,
		criteria: DefaultCriteria(),
		log:      logger.WithComponent("extraction-engine"),
	}, nil
}

// Extract produces a structured record from the document text. fileName
// is not inspected; it is passed through to the record metadata.
//
// The only error returned is ErrEmptyDocument (wrapped) when the trimmed
// text is shorter than MinDocumentLength; all other deviations from the
// expected layout degrade to empty fields and a lower confidence score.
func (e *Engine) Extract(text, fileName string) (*models.ExtractedOrder, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinDocumentLength {
		return nil, NewExtractionError("Extract", ErrEmptyDocument,
			fmt.Sprintf("%q has fewer than %d usable characters", fileName, MinDocumentLength))
	}

	items := e.pat.extractItems(text)
	documentTotal := e.pat.extractDocumentTotal(text)

	order := &models.ExtractedOrder{
		OrderNumber: e.pat.extractOrderNumber(text),
		Date:        e.pat.extractDate(text),
		Supplier:    e.pat.extractSupplier(text),
		Buyer:       e.buyer,
		Items:       items,
		Payment:     e.pat.extractPayment(text),
		Totals:      calculateTotals(items, documentTotal),
	}
	order.Metadata = models.Metadata{
		ExtractionID:   uuid.NewString(),
		FileName:       fileName,
		ExtractionTime: time.Now().UTC(),
		Confidence:     scoreConfidence(order, e.criteria),
		Source:         "Local Engine",
		Method:         "RegEx & Text Parsing",
	}

	e.log.Debug().
		Str("file", fileName).
		Str("order_number", order.OrderNumber).
		Int("items", len(order.Items)).
		Float64("confidence", order.Metadata.Confidence).
		Msg("Extraction completed")

	return order, nil
}
