package checkout

import (
	"strings"

	"plastic-world/internal/model"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var totalPrinter = message.NewPrinter(language.English)

// FormatTotal renders an amount with thousands separators and the dinar
// suffix, e.g. "45,000 د.ع".
func FormatTotal(amount int64) string {
	return totalPrinter.Sprintf("%d د.ع", amount)
}

// FormatOrderMessage renders the order as the WhatsApp hand-off message:
// shop header, customer name and address, one "- name (qty unit)" line per
// item, and the grouped total.
func FormatOrderMessage(shopName string, order model.Order) string {
	var b strings.Builder

	b.WriteString("✅ طلب جديد من " + shopName + "\n\n")
	b.WriteString("الاسم: " + order.CustomerName + "\n")
	b.WriteString("العنوان: " + order.CustomerAddress + "\n\n")
	b.WriteString("المنتجات:\n")
	for _, item := range order.Items {
		b.WriteString(totalPrinter.Sprintf("- %s (%d %s)\n", item.Name, item.CartQuantity, item.UnitType))
	}
	b.WriteString("\nالمجموع: " + FormatTotal(order.Total))

	return b.String()
}
