package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// AdminExportOrders streams the full order book as an .xlsx download
func (h *Handler) AdminExportOrders(c *gin.Context) {
	state := h.Store.State()

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
		return
	}

	headers := []string{
		"ID", "Customer", "Email", "Items", "Subtotal", "DeliveryFee",
		"ServiceFee", "Tax", "Total", "Status", "PaymentStatus",
		"TransferReference", "CreatedAt", "UpdatedAt",
	}
	headerRow := sheet.AddRow()
	for _, hd := range headers {
		headerRow.AddCell().SetValue(hd)
	}

	for _, o := range state.Orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(o.ID)
		row.AddCell().SetValue(o.Customer.Name)
		row.AddCell().SetValue(o.Customer.Email)

		itemCount := 0
		for _, item := range o.Items {
			itemCount += item.Quantity
		}
		row.AddCell().SetValue(itemCount)

		row.AddCell().SetValue(o.Subtotal)
		row.AddCell().SetValue(o.DeliveryFee)
		row.AddCell().SetValue(o.ServiceFee)
		row.AddCell().SetValue(o.Tax)
		row.AddCell().SetValue(o.Total)
		row.AddCell().SetValue(string(o.Status))
		row.AddCell().SetValue(string(o.PaymentStatus))
		row.AddCell().SetValue(o.TransferReference)
		row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		row.AddCell().SetValue(o.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	if err := file.Write(c.Writer); err != nil {
		logger.Error().Err(err).Msg("Failed to write orders export")
	}
}
