package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocextract/pkg/models"
)

var testBuyer = models.Buyer{
	Company: "CLICK ILUMINACAO LTDA",
	CNPJ:    "06.293.416/0001-21",
	Address: "AV. BENEDITO ALVES NAZARETH, 883, 40 - CAMPO DO PIRES",
	City:    "NOVA LIMA (MG)",
	Phone:   "(31) 3589-1424",
}

const wellFormedDocument = `ORDEM DE COMPRA: Nº 4521
Emissão: 12/03/2024
Fornecedor: ACME LTDA Contato: João Telefone: 31-1234-5678
Condição: 28 DDL
Frete: CIF
Codigo   Descrição           Qtde  UN  Vlr   Desc  Preço   IPI   Total     Entrega
1001     LUMINARIA LED 30W   10,00 PC  0,00  0,00  150,00  0,00  1.500,00  15/04/24
Sr. Fornecedor favor confirmar
TOTAL: 1.500,00`

func TestExtractWellFormedDocument(t *testing.T) {
	engine := NewEngine(testBuyer)

	order, err := engine.Extract(wellFormedDocument, "oc-4521.pdf")
	require.NoError(t, err)

	assert.Equal(t, "4521", order.OrderNumber)
	assert.Equal(t, "12/03/2024", order.Date)
	assert.Equal(t, "ACME LTDA", order.Supplier.Name)
	assert.Equal(t, "28 DDL", order.Payment.Condition)
	assert.Equal(t, "CIF", order.Payment.Freight)
	assert.Equal(t, testBuyer, order.Buyer)

	require.Len(t, order.Items, 1)
	assert.Equal(t, "LUMINARIA LED 30W", order.Items[0].Description)

	require.NotNil(t, order.Totals.DocumentTotal)
	assert.Equal(t, 1500.0, *order.Totals.DocumentTotal)
	assert.Equal(t, 1500.0, order.Totals.TotalValue)
	assert.Equal(t, 1, order.Totals.ItemCount)
	assert.Equal(t, "R$ 1500,00", order.Totals.TotalValueFormatted)

	// All six coverage criteria are satisfied.
	assert.Equal(t, 1.0, order.Metadata.Confidence)
	assert.Equal(t, "oc-4521.pdf", order.Metadata.FileName)
	assert.NotEmpty(t, order.Metadata.ExtractionID)
	assert.False(t, order.Metadata.ExtractionTime.IsZero())
}

func TestExtractTooShortDocument(t *testing.T) {
	engine := NewEngine(testBuyer)

	order, err := engine.Extract("muito curto", "vazio.txt")
	require.ErrorIs(t, err, ErrEmptyDocument)
	assert.Nil(t, order)

	order, err = engine.Extract("", "vazio.txt")
	require.ErrorIs(t, err, ErrEmptyDocument)
	assert.Nil(t, order)

	// Whitespace padding does not rescue a short document.
	order, err = engine.Extract("   curto   \n\n\t  ", "vazio.txt")
	require.ErrorIs(t, err, ErrEmptyDocument)
	assert.Nil(t, order)
}

func TestExtractUnstructuredDocument(t *testing.T) {
	engine := NewEngine(testBuyer)

	order, err := engine.Extract("Documento ilegível sem nenhuma estrutura reconhecível de pedido.", "ruido.txt")
	require.NoError(t, err)

	assert.Empty(t, order.OrderNumber)
	assert.Empty(t, order.Items)
	assert.Nil(t, order.Totals.DocumentTotal)
	assert.Equal(t, 0.0, order.Totals.TotalValue)
	assert.Equal(t, 0.0, order.Metadata.Confidence)
}

func TestExtractWithoutDocumentTotalSumsItems(t *testing.T) {
	engine := NewEngine(testBuyer)

	text := `ORDEM DE COMPRA: Nº 88
Codigo Descrição
1 ITEM UM 2,00 PC 0,00 0,00 100,00 0,00 200,00 01/06/24
2 ITEM DOIS 1,00 PC 0,00 0,00 300,00 0,00 300,00 01/06/24`

	order, err := engine.Extract(text, "oc-88.txt")
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	assert.Nil(t, order.Totals.DocumentTotal)
	assert.Equal(t, 500.0, order.Totals.TotalValue)
	assert.Equal(t, 3.0, order.Totals.TotalQuantity)
	assert.Equal(t, 2, order.Totals.ItemCount)
}

func TestExtractDocumentTotalWinsOverItemSum(t *testing.T) {
	engine := NewEngine(testBuyer)

	text := `ORDEM DE COMPRA: Nº 89
Codigo Descrição
1 ITEM UM 1,00 PC 0,00 0,00 100,00 0,00 100,00 01/06/24
FORMA PAGAMENTO
TOTAL: 1.050,00`

	order, err := engine.Extract(text, "oc-89.txt")
	require.NoError(t, err)

	require.NotNil(t, order.Totals.DocumentTotal)
	assert.Equal(t, 1050.0, *order.Totals.DocumentTotal)
	// The printed total is authoritative over the parsed-row sum.
	assert.Equal(t, 1050.0, order.Totals.TotalValue)
}

func TestExtractIsStatelessAcrossCalls(t *testing.T) {
	engine := NewEngine(testBuyer)

	first, err := engine.Extract(wellFormedDocument, "a.txt")
	require.NoError(t, err)
	second, err := engine.Extract(wellFormedDocument, "a.txt")
	require.NoError(t, err)

	// Same input, same record (metadata identity aside).
	assert.Equal(t, first.OrderNumber, second.OrderNumber)
	assert.Equal(t, first.Items, second.Items)
	assert.Equal(t, first.Totals, second.Totals)
	assert.NotEqual(t, first.Metadata.ExtractionID, second.Metadata.ExtractionID)
}

func TestNewEngineWithLayoutRejectsBadPattern(t *testing.T) {
	layout := DefaultLayout()
	layout.TableHeader = `(`
	_, err := NewEngineWithLayout(testBuyer, layout)
	require.Error(t, err)
}

func TestConfidenceMonotonicOverCriteria(t *testing.T) {
	engine := NewEngine(testBuyer)

	// Progressively richer documents must never lower the score.
	header := "Codigo Descrição\n1 ITEM 1,00 PC 0,00 0,00 10,00 0,00 10,00 01/01/24\n"
	docs := []string{
		"Documento ilegível sem nenhuma estrutura de pedido aqui.",
		"ORDEM DE COMPRA: Nº 1 e mais nada neste documento.",
		"ORDEM DE COMPRA: Nº 1 emitida em 12/03/2024 sem mais nada.",
		"ORDEM DE COMPRA: Nº 1 emitida em 12/03/2024\nFornecedor: ACME LTDA\nContato: X",
		"ORDEM DE COMPRA: Nº 1 emitida em 12/03/2024\nFornecedor: ACME LTDA\nContato: X\n" + header,
		"ORDEM DE COMPRA: Nº 1 emitida em 12/03/2024\nFornecedor: ACME LTDA\nContato: X\n" + header + "Condição: 28 DDL\n",
		"ORDEM DE COMPRA: Nº 1 emitida em 12/03/2024\nFornecedor: ACME LTDA\nContato: X\n" + header + "Condição: 28 DDL\nTOTAL: 10,00",
	}

	previous := -1.0
	for i, text := range docs {
		order, err := engine.Extract(text, "doc.txt")
		require.NoError(t, err, "doc %d", i)
		score := order.Metadata.Confidence
		assert.GreaterOrEqual(t, score, previous, "doc %d", i)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
		previous = score
	}
	assert.Equal(t, 1.0, previous)
}

func TestScoreConfidenceWeights(t *testing.T) {
	order := &models.ExtractedOrder{OrderNumber: "1"}
	criteria := []Criterion{
		{Name: "order_number", Weight: 3, Met: func(o *models.ExtractedOrder) bool { return o.OrderNumber != "" }},
		{Name: "date", Weight: 1, Met: func(o *models.ExtractedOrder) bool { return o.Date != "" }},
	}
	assert.Equal(t, 0.75, scoreConfidence(order, criteria))
	assert.Equal(t, 0.0, scoreConfidence(order, nil))
}

func TestCalculateTotalsEmptyItems(t *testing.T) {
	totals := calculateTotals(nil, nil)
	assert.Equal(t, 0.0, totals.TotalQuantity)
	assert.Equal(t, 0.0, totals.TotalValue)
	assert.Equal(t, 0, totals.ItemCount)
	assert.Nil(t, totals.DocumentTotal)
	assert.Equal(t, "R$ 0,00", totals.TotalValueFormatted)
}

func TestExtractMinimumLengthBoundary(t *testing.T) {
	engine := NewEngine(testBuyer)

	exactly := strings.Repeat("a", MinDocumentLength)
	_, err := engine.Extract(exactly, "boundary.txt")
	require.NoError(t, err)

	_, err = engine.Extract(strings.Repeat("a", MinDocumentLength-1), "boundary.txt")
	require.ErrorIs(t, err, ErrEmptyDocument)
}
