package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"waste_tracker/internal/config"
	"waste_tracker/internal/models"
)

const reportDateLayout = "2006-01-02"

// GenerateLoginLogReport exports the login logs for an inclusive date range
// as an xlsx attachment. The from/to parameters use the same "YYYY-MM-DD"
// format as the schedule date filter.
func GenerateLoginLogReport(c *gin.Context) {
	fromRaw := c.Query("from")
	toRaw := c.Query("to")
	if fromRaw == "" || toRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required (YYYY-MM-DD)"})
		return
	}
	from, err := time.Parse(reportDateLayout, fromRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date: " + err.Error()})
		return
	}
	to, err := time.Parse(reportDateLayout, toRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date: " + err.Error()})
		return
	}

	var logs []models.LoginLog
	// upper bound is inclusive of the whole "to" day
	err = config.DB.Preload("User").
		Where("logged_at >= ? AND logged_at < ?", from, to.AddDate(0, 0, 1)).
		Order("logged_at asc").
		Find(&logs).Error
	if err != nil {
		logrus.WithError(err).Error("GenerateLoginLogReport: could not fetch login logs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch login logs"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Login Logs"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"#", "Name", "Email", "Role", "Logged At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, log := range logs {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), log.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), log.User.FullName())
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), log.Email)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), log.User.Role)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), log.LoggedAt.Format("2006-01-02 15:04:05"))
	}

	filename := fmt.Sprintf("login-logs_%s_%s.xlsx", fromRaw, toRaw)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := f.Write(c.Writer); err != nil {
		logrus.WithError(err).Error("GenerateLoginLogReport: could not write workbook")
	}
}
