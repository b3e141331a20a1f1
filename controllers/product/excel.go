package productcontroller

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/desuper666/Site-shop/models"
	"github.com/desuper666/Site-shop/store"
)

// ImportProductsFromExcel bulk-creates or updates products from an uploaded
// .xlsx file (admin). Column order matches the export: ID, NameEN, NameRU,
// DescriptionEN, DescriptionRU, Price, Stock, Image. Rows with an existing
// ID update that product; rows without an ID create a new one.
func ImportProductsFromExcel(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			if len(row.Cells) < 7 {
				skippedCount++
				continue
			}

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			nameEN := get(1)
			nameRU := get(2)
			descEN := get(3)
			descRU := get(4)
			priceStr := get(5)
			stockStr := get(6)
			image := get(7)

			if nameEN == "" || priceStr == "" {
				skippedCount++
				continue
			}
			price, err := strconv.ParseFloat(priceStr, 64)
			if err != nil || price <= 0 {
				skippedCount++
				continue
			}
			stock := 0
			if stockStr != "" {
				if s, err := strconv.Atoi(stockStr); err == nil && s >= 0 {
					stock = s
				} else {
					skippedCount++
					continue
				}
			}

			ctx := c.Request.Context()
			if idStr != "" {
				id, err := strconv.ParseUint(idStr, 10, 64)
				if err != nil {
					skippedCount++
					continue
				}
				product, err := st.GetProduct(ctx, uint(id))
				if err != nil {
					skippedCount++
					continue
				}
				product.NameEN = nameEN
				product.NameRU = nameRU
				product.DescriptionEN = descEN
				product.DescriptionRU = descRU
				product.Price = price
				product.Stock = stock
				product.Image = image
				if product.Stock > 0 {
					product.RestockAt = nil
				}
				product.UpdatedAt = time.Now()
				if err := st.SaveProduct(ctx, product); err != nil {
					skippedCount++
					continue
				}
				updatedCount++
			} else {
				product := models.Product{
					NameEN:        nameEN,
					NameRU:        nameRU,
					DescriptionEN: descEN,
					DescriptionRU: descRU,
					Price:         price,
					Stock:         stock,
					Image:         image,
					CreatedAt:     time.Now(),
					UpdatedAt:     time.Now(),
				}
				if err := st.CreateProduct(ctx, &product); err != nil {
					skippedCount++
					continue
				}
				createdCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}
