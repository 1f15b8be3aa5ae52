package checkout

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/MaiadaMuhammed/AYN/internal/domain"
	"github.com/MaiadaMuhammed/AYN/internal/pricing"
)

func paymentLabel(payment string) string {
	if payment == "card" {
		return "Credit Card"
	}
	return "Cash on Delivery"
}

// Receipt renders an order receipt as a PDF: header, the buyer details
// snapshotted on the order, one line per item, then the total. Labels are
// English only: the core PDF fonts cannot shape Arabic text.
func Receipt(order domain.Order) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Order Receipt", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.Ln(5)
	pdf.CellFormat(0, 8, fmt.Sprintf("Order: %s", order.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Name: %s", order.CustomerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Email: %s", order.CustomerEmail), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Address: %s", order.ShippingAddress), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Payment: %s", paymentLabel(order.PaymentMethod)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Date: %s", order.Date.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")

	pdf.Ln(4)
	pdf.CellFormat(0, 8, "Products:", "", 1, "L", false, 0, "")
	for _, item := range order.Items {
		line := fmt.Sprintf("- %s x%d = $%.2f", item.Product.Title, item.Quantity, pricing.LineTotal(item))
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}

	pdf.Ln(3)
	if order.Discount > 0 {
		pdf.CellFormat(0, 8, fmt.Sprintf("Subtotal: $%.2f", order.Subtotal), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 8, fmt.Sprintf("Coupon %s: -$%.2f", order.CouponCode, order.Discount), "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Total: $%.2f", order.Total), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
