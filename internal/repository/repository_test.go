package repository

import (
	"errors"
	"testing"

	"farm_manager/internal/models"
	"farm_manager/internal/testutil"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))
	assert.ErrorIs(t, translateError(gorm.ErrRecordNotFound), models.ErrNotFound)
	assert.ErrorIs(t, translateError(&pgconn.PgError{Code: "23503"}), models.ErrReferenced)
	assert.ErrorIs(t, translateError(&pgconn.PgError{Code: "23505"}), models.ErrDuplicate)
	assert.ErrorIs(t, translateError(&pgconn.PgError{Code: "42501"}), models.ErrForbidden)

	var raised *models.RaisedError
	require.ErrorAs(t, translateError(&pgconn.PgError{Code: "P0001", Message: "Kho không đủ"}), &raised)
	assert.Equal(t, "Kho không đủ", raised.Message)

	other := errors.New("connection reset")
	assert.Equal(t, other, translateError(other))
}

func TestUserRepository(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	phone := "0901234567"

	user := &models.User{Email: "lan@example.com", Phone: &phone, FullName: "Lan", PasswordHash: "h1"}
	require.NoError(t, repo.Create(user))

	err := repo.Create(&models.User{Email: "lan@example.com", FullName: "Dup", PasswordHash: "h"})
	assert.ErrorIs(t, err, models.ErrDuplicate)

	byPhone, err := repo.GetByPhone(phone)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byPhone.ID)

	require.NoError(t, repo.UpdatePassword(user.ID, "h2"))
	byEmail, err := repo.GetByEmail("lan@example.com")
	require.NoError(t, err)
	assert.Equal(t, "h2", byEmail.PasswordHash)

	_, err = repo.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, repo.UpdatePassword(999, "h"), models.ErrNotFound)
}

func TestGardenRepositoryScopesToUser(t *testing.T) {
	db := testutil.NewDB(t)
	owner := createUser(t, db, "owner@example.com")
	stranger := createUser(t, db, "stranger@example.com")
	repo := NewGardenRepository(db)

	garden := createGarden(t, db, owner.ID, "Vườn A", 10)
	createGarden(t, db, stranger.ID, "Vườn khác", 1)

	list, err := repo.ListByUser(owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Vườn A", list[0].Name)

	_, err = repo.GetByID(garden.ID, stranger.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	garden.UserID = stranger.ID
	garden.Name = "Hijacked"
	assert.ErrorIs(t, repo.Update(garden), models.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(garden.ID, stranger.ID), models.ErrNotFound)

	garden.UserID = owner.ID
	garden.Name = "Vườn A1"
	garden.NumberOfBeds = 0
	require.NoError(t, repo.Update(garden))
	got, err := repo.GetByID(garden.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vườn A1", got.Name)
	assert.Zero(t, got.NumberOfBeds)

	require.NoError(t, repo.Delete(garden.ID, owner.ID))
	assert.ErrorIs(t, repo.Exists(garden.ID), models.ErrNotFound)
}

func TestHarvestRepository(t *testing.T) {
	db := testutil.NewDB(t)
	user := createUser(t, db, "owner@example.com")
	garden := createGarden(t, db, user.ID, "Vườn A", 10)
	tomato := createCropType(t, db, "Cà chua")
	repo := NewHarvestRepository(db)

	for _, date := range []string{"2024-05-02", "2024-05-03"} {
		h := &models.Harvest{
			GardenID: garden.ID, CropTypeID: tomato.ID, HarvestDate: day(date),
			Quantity: d("12.5"), Unit: "kg", PricePerUnit: d("18000"),
		}
		h.CalculateTotal()
		require.NoError(t, repo.Create(h))
	}

	all, err := repo.List(HarvestFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].HarvestDate.Equal(day("2024-05-03")))
	require.NotNil(t, all[0].CropType)
	assert.Equal(t, "Cà chua", all[0].CropType.Name)

	filterDay := day("2024-05-02")
	oneDay, err := repo.List(HarvestFilter{Date: &filterDay})
	require.NoError(t, err)
	require.Len(t, oneDay, 1)
	assert.True(t, oneDay[0].TotalAmount.Equal(d("225000")))

	// Crop types still referenced by harvests cannot be removed.
	assert.ErrorIs(t, NewCropTypeRepository(db).Delete(tomato.ID), models.ErrReferenced)
	assert.ErrorIs(t, NewGardenRepository(db).Delete(garden.ID, user.ID), models.ErrReferenced)
}

func TestLaborRecordPayment(t *testing.T) {
	db := testutil.NewDB(t)
	worker := &models.Worker{Name: "Anh Tư", HourlyRate: d("25000")}
	require.NoError(t, NewWorkerRepository(db).Create(worker))
	repo := NewLaborRecordRepository(db)

	record := models.NewLaborRecord(worker, day("2024-05-15"), d("8"), "làm cỏ")
	require.NoError(t, repo.Create(record))
	require.NoError(t, repo.UpdatePaymentStatus(record.ID, models.LaborPaid))

	got, err := repo.GetByID(record.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LaborPaid, got.PaymentStatus)
	assert.True(t, got.TotalAmount.Equal(d("200000")))
	require.NotNil(t, got.Worker)

	assert.ErrorIs(t, NewWorkerRepository(db).Delete(worker.ID), models.ErrReferenced)
	require.NoError(t, repo.Delete(record.ID))
	require.NoError(t, NewWorkerRepository(db).Delete(worker.ID))
}
