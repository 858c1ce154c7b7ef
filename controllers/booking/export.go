package booking

import (
	"fmt"
	"time"

	"freightdesk/logger"
	"freightdesk/types"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"Job No", "Status", "Nomination Date", "Consignee", "Shipper",
	"HBL No", "MBL No", "POL", "POD", "Container", "Agent",
	"Shipping Line", "Buy Rate", "Sell Rate", "ETD", "ETA",
	"SWB", "IGM Filed", "CHA", "Description",
}

// Export writes the whole booking register as an .xlsx download.
func (h *BookingController) Export(c *fiber.Ctx) error {
	bookings, err := h.service.List()
	if err != nil {
		logger.Error("Failed to list bookings for export", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to export bookings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		lastCol, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		f.SetCellStyle(sheet, "A1", lastCol, headerStyle)
	}

	for i, b := range bookings {
		row := i + 2
		values := []interface{}{
			b.JobNumber, b.Status.String(), formatDate(b.NominationDate),
			b.Consignee, b.Shipper, b.HBLNo, b.MBLNo, b.POL, b.POD,
			b.ContainerSize, b.Agent, b.ShippingLine, b.BuyRate, b.SellRate,
			formatDate(b.ETD), formatDate(b.ETA), b.SWB, b.IGMFiled,
			b.CHA, b.Description,
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Error("Failed to build booking export", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to export bookings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	filename := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("02-01-2006"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
