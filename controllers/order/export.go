package orderControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// ExportOrdersToExcel writes every order to a downloadable spreadsheet.
// GET /api/orders/export (admin)
func ExportOrdersToExcel(orders OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListAll()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "fail", "error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderNumber", "User", "Items", "TotalAmount", "PaymentMethod",
			"PaymentStatus", "OrderStatus", "ShippingAddress", "RecipientName",
			"RecipientPhone", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range list {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.OrderNumber)
			userLabel := o.UserID
			if o.User != nil {
				userLabel = o.User.Email
			}
			row.AddCell().SetValue(userLabel)

			var lines []string
			for _, it := range o.Items {
				name := "deleted product"
				if it.Product != nil {
					name = it.Product.Name
				}
				lines = append(lines, name+" x"+strconv.Itoa(it.Quantity))
			}
			row.AddCell().SetValue(strings.Join(lines, ", "))

			row.AddCell().SetValue(o.TotalAmount.StringFixed(2))
			row.AddCell().SetValue(string(o.PaymentMethod))
			row.AddCell().SetValue(string(o.PaymentStatus))
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.ShippingAddress)
			row.AddCell().SetValue(o.RecipientName)
			row.AddCell().SetValue(o.RecipientPhone)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "fail", "error": "Failed to write Excel file"})
			return
		}
	}
}
