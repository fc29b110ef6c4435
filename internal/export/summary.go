package export

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"ocextract/pkg/models"
)

// Summary renders the confirmation message sent to suppliers over
// messaging apps: order header, one line per item, totals and payment
// terms.
func Summary(order *models.ExtractedOrder) string {
	orderNumber := orDefault(order.OrderNumber, "N/A")
	supplierName := orDefault(order.Supplier.Name, "N/A")
	condition := orDefault(order.Payment.Condition, "-")
	freight := orDefault(order.Payment.Freight, "-")
	issueDate := orDefault(order.Date, "N/A")
	totalValue := strings.Replace(decimal.NewFromFloat(order.Totals.TotalValue).StringFixed(2), ".", ",", 1)

	var sb strings.Builder
	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "Confirmamos a emissão da Ordem de Compra nº *%s* para a *%s* referente aos itens cotados.\n\n", orderNumber, supplierName)
	sb.WriteString("---\n")
	sb.WriteString("Os detalhes do pedido são:\n\n")

	for _, item := range order.Items {
		fmt.Fprintf(&sb, "*_[%s - %s - Qtde: %s %s]_*\n", item.Code, item.Description, formatNumber(item.Quantity), item.Unit)
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "*_Valor Total: R$ %s_*\n", totalValue)
	fmt.Fprintf(&sb, "*_Condição de Pagamento: %s_*\n", condition)
	fmt.Fprintf(&sb, "*_Condição de Frete: %s_*\n\n", freight)

	sb.WriteString("Segue em Anexo a Ordem de compras:\n\n")
	fmt.Fprintf(&sb, "📎 *OC - %s - %s - %s*\n\n", orderNumber, supplierName, issueDate)
	sb.WriteString("---")

	return sb.String()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
