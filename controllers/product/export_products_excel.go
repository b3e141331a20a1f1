package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/desuper666/Site-shop/store"
)

// ExportProductsToExcel streams the catalog as an .xlsx download (admin).
func ExportProductsToExcel(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := st.ListProducts(c.Request.Context(), store.ProductFilter{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "NameEN", "NameRU", "DescriptionEN", "DescriptionRU",
			"Price", "Stock", "Image", "RestockAt", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.NameEN)
			row.AddCell().SetValue(p.NameRU)
			row.AddCell().SetValue(p.DescriptionEN)
			row.AddCell().SetValue(p.DescriptionRU)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.Image)
			if p.RestockAt != nil {
				row.AddCell().SetValue(p.RestockAt.Format("2006-01-02 15:04:05"))
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
