package services

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Prajwalng2/Major-Project-temp/models"
)

// ExportService produces the admin workbook: the full catalog plus a
// summary sheet with application counts per scheme.
type ExportService struct {
	catalog                Catalog
	applicationsCollection *mongo.Collection
}

func NewExportService(catalog Catalog, applicationsCollection *mongo.Collection) *ExportService {
	return &ExportService{
		catalog:                catalog,
		applicationsCollection: applicationsCollection,
	}
}

// StreamCatalogExport writes the workbook directly to the HTTP response.
func (es *ExportService) StreamCatalogExport(ctx *gin.Context) error {
	schemes, err := es.catalog.All(ctx.Request.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch catalog: %w", err)
	}

	counts, err := es.applicationCounts(ctx.Request.Context())
	if err != nil {
		// Export still serves without counts; the column stays zero.
		counts = map[string]int{}
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Schemes"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"ID", "Title", "Category", "Ministry", "State", "Deadline", "Launch Date",
		"Benefit", "Popular", "Active", "Applications", "Eligibility",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIdx, s := range schemes {
		row := rowIdx + 2
		values := []interface{}{
			s.ID, s.Title, s.Category, s.Ministry, s.State, s.Deadline, s.LaunchDate,
			s.BenefitAmount, s.IsPopular, s.IsActive(), counts[s.ID], s.EligibilityText,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	for i := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	if err := es.writeSummarySheet(f, schemes, counts); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("scheme_catalog_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Header("Content-Disposition", "attachment; filename="+filename)
	ctx.Header("Content-Length", strconv.Itoa(buf.Len()))
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	return nil
}

func (es *ExportService) writeSummarySheet(f *excelize.File, schemes []models.Scheme, counts map[string]int) error {
	summarySheet := "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	categoryCounts := map[string]int{}
	active := 0
	totalApplications := 0
	for _, s := range schemes {
		categoryCounts[s.Category]++
		if s.IsActive() {
			active++
		}
		totalApplications += counts[s.ID]
	}

	summaryData := [][]interface{}{
		{"Export Information", ""},
		{"Export Date", time.Now().Format("2006-01-02 15:04:05")},
		{"Total Schemes", len(schemes)},
		{"Active Schemes", active},
		{"Total Applications", totalApplications},
		{"", ""},
		{"Schemes by Category", "Count"},
	}

	categories := make([]string, 0, len(categoryCounts))
	for c := range categoryCounts {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		summaryData = append(summaryData, []interface{}{c, categoryCounts[c]})
	}

	for i, row := range summaryData {
		for j, cell := range row {
			cellRef, _ := excelize.CoordinatesToCellName(j+1, i+1)
			f.SetCellValue(summarySheet, cellRef, cell)
		}
	}
	return nil
}

// applicationCounts groups submitted applications by scheme.
func (es *ExportService) applicationCounts(ctx context.Context) (map[string]int, error) {
	if es.applicationsCollection == nil {
		return map[string]int{}, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$scheme_id",
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := es.applicationsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := map[string]int{}
	for cursor.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int    `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			continue
		}
		counts[strings.TrimSpace(row.ID)] = row.Count
	}
	return counts, cursor.Err()
}
