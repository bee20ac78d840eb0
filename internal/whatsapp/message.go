// Package whatsapp renders cart and catalog contents into the plain-text
// messages handed to the WhatsApp deep-link channel.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/floramajestyc/catalog-service/internal/cart"
	"github.com/floramajestyc/catalog-service/internal/catalog"
	"github.com/floramajestyc/catalog-service/internal/i18n"
)

// OrderMessage renders one line per cart item plus a grand-total footer.
// Amounts are rounded to two decimals here and nowhere earlier.
func OrderMessage(c *cart.Cart) string {
	lines := make([]string, 0, len(c.Items))
	for _, it := range c.Items {
		lines = append(lines, fmt.Sprintf("%s - Cantidad: %d - Precio: $%.2f c/u",
			it.Description, it.Quantity, cart.LineTotal(it)))
	}
	return fmt.Sprintf("Nuevo pedido:\n\n%s\n\nTotal: $%.2f", strings.Join(lines, "\n"), c.Total())
}

// PriceListMessage renders the whole catalog as a broadcastable price list,
// one box price per product, with the delivery and minimum-order footer from
// the resolved text bundle.
func PriceListMessage(products []catalog.Product, text i18n.Bundle) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("%s - %s - $%.2f por caja",
			p.Description, p.Category, p.BoxPrice()))
	}
	return fmt.Sprintf("🌸 *Flora Majestyc - Catálogo de Productos*\n\n%s\n\n"+
		"📞 Para realizar tu pedido, responde a este mensaje\n\n"+
		"*Entrega:* %s\n*Pedido mínimo:* %s",
		strings.Join(lines, "\n"), text.DeliveryText1, text.DeliveryText2)
}

// Link builds the wa.me deep link carrying the URL-encoded message.
func Link(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}
