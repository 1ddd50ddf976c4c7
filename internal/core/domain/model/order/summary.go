package order

import (
	"fmt"
	"strings"
)

// Summary renders the order as a chat-ready message, the format the
// bakery pastes into WhatsApp when forwarding an order.
func (o *Order) Summary() string {
	address := o.details.Address()
	if address == "" {
		address = "Retirada / Não informado"
	}
	payment := o.paymentMethod.String()
	if payment == "" {
		payment = "Não informado"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*NOVO PEDIDO - #%s*\n", o.id.String())
	fmt.Fprintf(&b, "👤 Cliente: %s\n", o.details.Name())
	fmt.Fprintf(&b, "📱 Telefone: %s\n", o.details.Phone())
	fmt.Fprintf(&b, "📍 Endereço: %s\n", address)
	b.WriteString("\n🛒 *ITENS:*\n")
	for _, item := range o.items {
		fmt.Fprintf(&b, "- %dx %s\n", item.Quantity(), item.ProductName())
	}
	fmt.Fprintf(&b, "\n💰 *TOTAL:* R$ %s\n", o.totalAmount.String())
	fmt.Fprintf(&b, "💳 *Pagamento:* %s\n", payment)
	if o.notes != "" {
		fmt.Fprintf(&b, "📝 *Obs:* %s\n", o.notes)
	}
	return b.String()
}
