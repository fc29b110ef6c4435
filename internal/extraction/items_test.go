package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const itemTableText = `Codigo   Descrição                     Qtde  UN   Vlr.Unit  Desc  Preço  IPI   Total     Entrega
1001     LUMINARIA LED 30W             10,00 PC   0,00      0,00  150,00 0,00  1.500,00  15/04/24
1002     REFLETOR EXTERNO =>: cotação  2,00  UN   0,00      0,00  200,00 10,00 400,00    20/04/2024
linha ilegível que não é um item
Sr. Fornecedor favor confirmar o recebimento
1003     ITEM DEPOIS DO FIM            1,00  PC   0,00      0,00  50,00  0,00  50,00     01/05/24`

func TestExtractItems(t *testing.T) {
	p := defaultPatterns(t)

	items := p.extractItems(itemTableText)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "1001", first.Code)
	assert.Equal(t, "LUMINARIA LED 30W", first.Description)
	assert.Equal(t, 10.0, first.Quantity)
	assert.Equal(t, "PC", first.Unit)
	assert.Equal(t, 150.0, first.UnitPrice)
	assert.Equal(t, 0.0, first.IPI)
	assert.Equal(t, 1500.0, first.Total)
	assert.Equal(t, "15/04/24", first.DeliveryDate)

	second := items[1]
	assert.Equal(t, "1002", second.Code)
	// Trailing "=>:" annotations are stripped from the description.
	assert.Equal(t, "REFLETOR EXTERNO", second.Description)
	assert.Equal(t, 10.0, second.IPI)
	assert.Equal(t, 400.0, second.Total)
	assert.Equal(t, "20/04/2024", second.DeliveryDate)
}

func TestExtractItemsNoHeader(t *testing.T) {
	p := defaultPatterns(t)

	items := p.extractItems("documento sem tabela de itens\n1001 ITEM 1,00 PC 0,00 0,00 10,00 0,00 10,00 01/01/24")
	assert.Empty(t, items)
}

func TestExtractItemsTableRunsToEndOfText(t *testing.T) {
	p := defaultPatterns(t)

	text := "Codigo Descrição\n1001 CABO PP 2X1,5MM 5,00 MT 0,00 0,00 4,00 0,00 20,00 10/06/24"
	items := p.extractItems(text)
	require.Len(t, items, 1)
	assert.Equal(t, "CABO PP 2X1,5MM", items[0].Description)
	assert.Equal(t, 5.0, items[0].Quantity)
}

func TestExtractItemsEndMarkers(t *testing.T) {
	p := defaultPatterns(t)

	for _, footer := range []string{
		"Sr. Fornecedor",
		"Para pagamentos à vista",
		"FORMA PAGAMENTO",
	} {
		text := "Codigo Descrição\n" +
			"1001 ITEM UM 1,00 PC 0,00 0,00 10,00 0,00 10,00 01/01/24\n" +
			footer + "\n" +
			"1002 ITEM DOIS 1,00 PC 0,00 0,00 10,00 0,00 10,00 01/01/24"
		items := p.extractItems(text)
		require.Len(t, items, 1, "footer %q should end the table", footer)
		assert.Equal(t, "1001", items[0].Code)
	}
}

func TestExtractItemsMalformedRowsSkipped(t *testing.T) {
	p := defaultPatterns(t)

	text := "Codigo Descrição\n" +
		"sem código ITEM 1,00 PC 0,00 0,00 10,00 0,00 10,00 01/01/24\n" + // no leading code
		"1001 ITEM SEM DATA 1,00 PC 0,00 0,00 10,00 0,00 10,00\n" + // missing delivery date
		"1002 ITEM VALIDO 1,00 PC 0,00 0,00 10,00 0,00 10,00 01/01/24"
	items := p.extractItems(text)
	require.Len(t, items, 1)
	assert.Equal(t, "1002", items[0].Code)
}

func TestExtractItemsPreservesDocumentOrder(t *testing.T) {
	p := defaultPatterns(t)

	text := "Codigo Descrição\n" +
		"30 TERCEIRO 1,00 PC 0,00 0,00 1,00 0,00 1,00 01/01/24\n" +
		"10 PRIMEIRO 1,00 PC 0,00 0,00 1,00 0,00 1,00 01/01/24\n" +
		"20 SEGUNDO 1,00 PC 0,00 0,00 1,00 0,00 1,00 01/01/24"
	items := p.extractItems(text)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"30", "10", "20"}, []string{items[0].Code, items[1].Code, items[2].Code})
}
