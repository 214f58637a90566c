package services

import (
	"fmt"
	"io"
	"time"

	"farm_manager/internal/models"
	"farm_manager/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

const recentCareActivities = 5

// DateRange is an inclusive range of days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// CurrentMonth is the range from the first to the last day of now's month.
func CurrentMonth(now time.Time) DateRange {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(0, 1, -1)}
}

type Summary struct {
	Start              time.Time                    `json:"start"`
	End                time.Time                    `json:"end"`
	Revenue            decimal.Decimal              `json:"revenue"`
	InventoryExpenses  decimal.Decimal              `json:"inventory_expenses"`
	LaborExpenses      decimal.Decimal              `json:"labor_expenses"`
	Expenses           decimal.Decimal              `json:"expenses"`
	Profit             decimal.Decimal              `json:"profit"`
	OrderCount         int64                        `json:"order_count"`
	LaborHours         decimal.Decimal              `json:"labor_hours"`
	GardenCount        int64                        `json:"garden_count"`
	BedCount           int64                        `json:"bed_count"`
	CustomerCount      int64                        `json:"customer_count"`
	WorkerCount        int64                        `json:"worker_count"`
	CropTypeCount      int64                        `json:"crop_type_count"`
	LastCareActivities []models.CareActivitySummary `json:"last_care_activities"`
}

type StatisticsService interface {
	GetSummary(r DateRange) (*Summary, error)
	// ExportXLSX writes the summary and the orders of the range as an Excel
	// workbook.
	ExportXLSX(r DateRange, w io.Writer) error
}

type statisticsService struct {
	statsRepo repository.StatisticsRepository
	orderRepo repository.OrderRepository
}

func NewStatisticsService(statsRepo repository.StatisticsRepository, orderRepo repository.OrderRepository) StatisticsService {
	return &statisticsService{statsRepo: statsRepo, orderRepo: orderRepo}
}

// GetSummary runs the independent aggregates concurrently and waits for all
// of them. Nothing is cached.
func (s *statisticsService) GetSummary(r DateRange) (*Summary, error) {
	if r.End.Before(r.Start) {
		return nil, models.NewValidationError("end", "must not be before start")
	}

	sum := &Summary{Start: r.Start, End: r.End}
	var g errgroup.Group

	g.Go(func() error {
		var err error
		sum.Revenue, sum.OrderCount, err = s.statsRepo.CompletedOrderRevenue(r.Start, r.End)
		return err
	})
	g.Go(func() error {
		var err error
		sum.InventoryExpenses, err = s.statsRepo.InboundInventoryCost(r.Start, r.End)
		return err
	})
	g.Go(func() error {
		var err error
		sum.LaborExpenses, sum.LaborHours, err = s.statsRepo.LaborTotals(r.Start, r.End)
		return err
	})
	g.Go(func() error {
		var err error
		sum.BedCount, err = s.statsRepo.TotalBeds()
		return err
	})
	g.Go(func() error {
		var err error
		sum.LastCareActivities, err = s.statsRepo.RecentCareActivities(recentCareActivities)
		return err
	})

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Garden{}, &sum.GardenCount},
		{&models.Customer{}, &sum.CustomerCount},
		{&models.Worker{}, &sum.WorkerCount},
		{&models.CropType{}, &sum.CropTypeCount},
	}
	for _, c := range counts {
		c := c
		g.Go(func() error {
			var err error
			*c.dest, err = s.statsRepo.Count(c.model)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load statistics: %w", err)
	}

	sum.Expenses = sum.InventoryExpenses.Add(sum.LaborExpenses)
	sum.Profit = sum.Revenue.Sub(sum.Expenses)
	if sum.LastCareActivities == nil {
		sum.LastCareActivities = []models.CareActivitySummary{}
	}
	return sum, nil
}

const (
	summarySheet = "Tổng quan"
	ordersSheet  = "Đơn hàng"
	dateLayout   = "2006-01-02"
)

func (s *statisticsService) ExportXLSX(r DateRange, w io.Writer) error {
	sum, err := s.GetSummary(r)
	if err != nil {
		return err
	}
	orders, err := s.orderRepo.GetByDateRange(r.Start, r.End)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Từ ngày", sum.Start.Format(dateLayout)},
		{"Đến ngày", sum.End.Format(dateLayout)},
		{"Doanh thu", sum.Revenue.InexactFloat64()},
		{"Chi phí vật tư", sum.InventoryExpenses.InexactFloat64()},
		{"Chi phí nhân công", sum.LaborExpenses.InexactFloat64()},
		{"Tổng chi phí", sum.Expenses.InexactFloat64()},
		{"Lợi nhuận", sum.Profit.InexactFloat64()},
		{"Số đơn hoàn thành", sum.OrderCount},
		{"Giờ công", sum.LaborHours.InexactFloat64()},
		{"Số vườn", sum.GardenCount},
		{"Số luống", sum.BedCount},
		{"Số khách hàng", sum.CustomerCount},
		{"Số nhân công", sum.WorkerCount},
		{"Số loại cây trồng", sum.CropTypeCount},
	}
	if err := writeRows(f, summarySheet, rows); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 24); err != nil {
		return err
	}

	if _, err := f.NewSheet(ordersSheet); err != nil {
		return err
	}
	orderRows := [][]interface{}{
		{"Mã", "Ngày đặt", "Khách hàng", "Trạng thái", "Thanh toán", "Tạm tính", "Tổng tiền", "Đã cọc", "Còn lại"},
	}
	for _, o := range orders {
		customer := ""
		if o.Customer != nil {
			customer = o.Customer.Name
		}
		orderRows = append(orderRows, []interface{}{
			o.ID,
			o.OrderDate.Format(dateLayout),
			customer,
			string(o.Status),
			string(o.PaymentStatus),
			o.SubTotal.InexactFloat64(),
			o.TotalAmount.InexactFloat64(),
			o.DepositAmount.InexactFloat64(),
			o.RemainingAmount.InexactFloat64(),
		})
	}
	if err := writeRows(f, ordersSheet, orderRows); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(ordersSheet, "A1", "I1", bold); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
