package api

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/trykin/spark/pkg/services"
)

// csvInjectionPrefixes are characters that make a spreadsheet treat a
// cell as a formula.
const csvInjectionPrefixes = "=+-@\t\r"

// sanitizeCSV neutralizes formula injection by prefixing dangerous
// cells with a single quote.
func sanitizeCSV(value string) string {
	if value == "" {
		return value
	}
	for i := 0; i < len(csvInjectionPrefixes); i++ {
		if value[0] == csvInjectionPrefixes[i] {
			return "'" + value
		}
	}
	return value
}

// adminLeadsExportHandler handles GET /spark/admin/leads/export,
// returning the filtered leads as a CSV download.
func (s *Server) adminLeadsExportHandler(c *echo.Context) error {
	client := currentClient(c)

	dateFrom, err := queryTime(c, "date_from")
	if err != nil {
		return err
	}
	dateTo, err := queryTime(c, "date_to")
	if err != nil {
		return err
	}

	leads, err := s.Leads.ListAll(c.Request().Context(), client.ID, services.LeadFilter{
		Status:   c.QueryParam("status"),
		DateFrom: dateFrom,
		DateTo:   dateTo,
	})
	if err != nil {
		return mapServiceError(err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Name", "Email", "Phone", "Status", "Notes", "Captured At", "Conversation ID"}); err != nil {
		return mapServiceError(err)
	}

	for _, l := range leads {
		notes := derefStr(l.AdminNotes)
		if notes == "" {
			notes = derefStr(l.Notes)
		}
		row := []string{
			sanitizeCSV(derefStr(l.Name)),
			sanitizeCSV(derefStr(l.Email)),
			sanitizeCSV(derefStr(l.Phone)),
			sanitizeCSV(string(l.Status)),
			sanitizeCSV(notes),
			l.CreatedAt.UTC().Format(time.RFC3339),
			derefStr(l.ConversationID),
		}
		if err := w.Write(row); err != nil {
			return mapServiceError(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return mapServiceError(err)
	}

	filename := "spark-leads-" + time.Now().UTC().Format("2006-01-02") + ".csv"
	c.Response().Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}
