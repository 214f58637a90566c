package repository

import (
	"time"

	"farm_manager/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StatisticsRepository runs the aggregate queries behind the statistics
// page. Date arguments are inclusive days.
type StatisticsRepository interface {
	CompletedOrderRevenue(start, end time.Time) (decimal.Decimal, int64, error)
	InboundInventoryCost(start, end time.Time) (decimal.Decimal, error)
	LaborTotals(start, end time.Time) (amount decimal.Decimal, hours decimal.Decimal, err error)
	Count(model interface{}) (int64, error)
	TotalBeds() (int64, error)
	RecentCareActivities(limit int) ([]models.CareActivitySummary, error)
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

func (r *statisticsRepository) CompletedOrderRevenue(start, end time.Time) (decimal.Decimal, int64, error) {
	from, to := dayBounds(start, end)
	var revenue decimal.Decimal
	var count int64
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0), COUNT(*)").
		Where("status = ? AND order_date >= ? AND order_date < ?", models.OrderCompleted, from, to).
		Row().Scan(&revenue, &count)
	return revenue, count, translateError(err)
}

func (r *statisticsRepository) InboundInventoryCost(start, end time.Time) (decimal.Decimal, error) {
	from, to := dayBounds(start, end)
	var total decimal.Decimal
	err := r.db.Model(&models.InventoryTransaction{}).
		Select("COALESCE(SUM(total), 0)").
		Where("type = ? AND date >= ? AND date < ?", models.TransactionIn, from, to).
		Row().Scan(&total)
	return total, translateError(err)
}

func (r *statisticsRepository) LaborTotals(start, end time.Time) (decimal.Decimal, decimal.Decimal, error) {
	from, to := dayBounds(start, end)
	var amount, hours decimal.Decimal
	err := r.db.Model(&models.LaborRecord{}).
		Select("COALESCE(SUM(total_amount), 0), COALESCE(SUM(hours_worked), 0)").
		Where("work_date >= ? AND work_date < ?", from, to).
		Row().Scan(&amount, &hours)
	return amount, hours, translateError(err)
}

func (r *statisticsRepository) Count(model interface{}) (int64, error) {
	var count int64
	err := r.db.Model(model).Count(&count).Error
	return count, translateError(err)
}

func (r *statisticsRepository) TotalBeds() (int64, error) {
	var beds int64
	err := r.db.Model(&models.Garden{}).Select("COALESCE(SUM(number_of_beds), 0)").Row().Scan(&beds)
	return beds, translateError(err)
}

func (r *statisticsRepository) RecentCareActivities(limit int) ([]models.CareActivitySummary, error) {
	var summaries []models.CareActivitySummary
	err := r.db.Table("care_activities").
		Select("care_activities.id, care_activities.activity_type, care_activities.activity_date, gardens.name AS garden_name").
		Joins("LEFT JOIN gardens ON gardens.id = care_activities.garden_id").
		Order("care_activities.activity_date desc, care_activities.id desc").
		Limit(limit).
		Scan(&summaries).Error
	return summaries, translateError(err)
}
