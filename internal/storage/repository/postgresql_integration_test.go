package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

func TestStreetGetOrCreateIdempotency(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	first, err := storage.GetOrCreateStreet(ctx, "Шевченка", "вул.")
	require.NoError(t, err)

	second, err := storage.GetOrCreateStreet(ctx, "Шевченка", "вул.")
	require.NoError(t, err)
	require.Equal(t, first, second, "same street should resolve to same id")

	other, err := storage.GetOrCreateStreet(ctx, "Шевченка", "проспект.")
	require.NoError(t, err)
	require.NotEqual(t, first, other, "different type is a different street")

	var count int
	err = storage.DB.QueryRow(`SELECT COUNT(*) FROM streets WHERE name = 'Шевченка'`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestSubscriberRoundtripAndList(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	subID, err := storage.CreateSubscriber(ctx, models.CreateSubscriberRequest{
		Lastname:   "Коваленко",
		Firstname:  "Іван",
		Middlename: "Петрович",
		StreetName: "Шевченка",
		StreetType: "вул.",
		Building:   "10",
		Apartment:  "5",
	})
	require.NoError(t, err)

	details, err := storage.GetSubscriber(ctx, subID)
	require.NoError(t, err)
	require.NotNil(t, details)
	require.Equal(t, "Коваленко", details.Lastname)
	require.Equal(t, "Іван", details.Firstname)
	require.NotNil(t, details.AddressID)
	require.NotNil(t, details.StreetName)
	require.Equal(t, "Шевченка", *details.StreetName)

	factory := NewTestDataFactory(storage)
	factory.CreatePhone(t, "0671234567", models.PhoneTypeMobile, &subID, nil, true)
	factory.CreatePhone(t, "0441234567", models.PhoneTypeHome, &subID, nil, true)

	list, err := storage.ListSubscribers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].MainPhone)
	require.Equal(t, "0671234567", *list[0].MainPhone, "mobile wins over home as main phone")
	require.NotNil(t, list[0].FullAddress)
	require.Equal(t, "вул.. Шевченка 10, кв. 5", *list[0].FullAddress)

	missing, err := storage.GetSubscriber(ctx, subID+1000)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestSubscriberDeleteCascades(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	factory := NewTestDataFactory(storage)
	subID := factory.CreateSubscriber(t, "Мельник", "Олена", "", nil, nil)
	factory.CreatePhone(t, "0501112233", models.PhoneTypeMobile, &subID, nil, true)
	factory.CreateDebt(t, subID, 99.90, time.Now(), nil, models.DebtStatusActive)

	rows, err := storage.DeleteSubscriber(ctx, subID)
	require.NoError(t, err)
	require.Equal(t, 1, rows)

	var phones, debts int
	require.NoError(t, storage.DB.QueryRow(
		`SELECT COUNT(*) FROM phone_numbers WHERE subscriber_id = $1`, subID).Scan(&phones))
	require.NoError(t, storage.DB.QueryRow(
		`SELECT COUNT(*) FROM debts WHERE subscriber_id = $1`, subID).Scan(&debts))
	require.Equal(t, 0, phones, "phones must be cascade-deleted")
	require.Equal(t, 0, debts, "debts must be cascade-deleted")

	rows, err = storage.DeleteSubscriber(ctx, subID)
	require.NoError(t, err)
	require.Equal(t, 0, rows, "repeat delete is a silent no-op")
}

func TestAddressDeleteNullsReferences(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	streetID := factory.CreateStreet(t, "Франка", "вул.")
	addressID := factory.CreateAddress(t, streetID, "3", "")
	officeID := factory.CreatePostOffice(t, 58001, &addressID)
	subID := factory.CreateSubscriber(t, "Бондаренко", "Тарас", "", &addressID, &officeID)

	_, err := storage.DB.Exec(`DELETE FROM addresses WHERE id = $1`, addressID)
	require.NoError(t, err)

	var subAddress, officeAddress *int
	require.NoError(t, storage.DB.QueryRow(
		`SELECT address_id FROM subscribers WHERE id = $1`, subID).Scan(&subAddress))
	require.NoError(t, storage.DB.QueryRow(
		`SELECT address_id FROM post_offices WHERE id = $1`, officeID).Scan(&officeAddress))
	require.Nil(t, subAddress)
	require.Nil(t, officeAddress)
}

func TestRegistrationApproval(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	ok, err := storage.ApproveRegistrationRequest(ctx, 12345)
	require.NoError(t, err)
	require.False(t, ok, "missing request must approve to false")

	reqID, err := storage.CreateRegistrationRequest(ctx, "newcomer", "$2a$10$hash")
	require.NoError(t, err)

	ok, err = storage.ApproveRegistrationRequest(ctx, reqID)
	require.NoError(t, err)
	require.True(t, ok)

	user, err := storage.GetUserByLogin(ctx, "newcomer")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, models.RoleUser, user.Role)
	require.Equal(t, "$2a$10$hash", user.PasswordHash, "hash is transferred verbatim")

	request, err := storage.GetRegistrationRequest(ctx, reqID)
	require.NoError(t, err)
	require.Equal(t, models.RegistrationStatusApproved, request.Status)

	// логин уже занят, повторное одобрение упирается в unique
	_, err = storage.ApproveRegistrationRequest(ctx, reqID)
	require.Error(t, err)
}

func TestNumberChangeApply(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	factory := NewTestDataFactory(storage)
	subID := factory.CreateSubscriber(t, "Гнатюк", "Марія", "", nil, nil)
	factory.CreatePhone(t, "0970000001", models.PhoneTypeMobile, &subID, nil, true)
	reqID := factory.CreateNumberChangeRequest(t, subID, "0970000001", "0970000002", models.NumberChangeStatusNew)

	request, err := storage.GetNumberChangeRequest(ctx, reqID)
	require.NoError(t, err)
	require.NotNil(t, request)

	require.NoError(t, storage.ApplyNumberChange(ctx, request))

	phones, err := storage.ListPhonesBySubscriber(ctx, subID)
	require.NoError(t, err)
	require.Len(t, phones, 1)
	require.Equal(t, "0970000002", phones[0].Number)
	require.Equal(t, models.PhoneTypeMobile, phones[0].Type)
	require.Nil(t, phones[0].OperatorName)
	require.True(t, phones[0].Active)

	gone, err := storage.GetNumberChangeRequest(ctx, reqID)
	require.NoError(t, err)
	require.Nil(t, gone, "applied request must be deleted")
}

func TestNumberChangeApplyWithMissingOldNumber(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	factory := NewTestDataFactory(storage)
	subID := factory.CreateSubscriber(t, "Дорошенко", "Павло", "", nil, nil)
	reqID := factory.CreateNumberChangeRequest(t, subID, "0930000000", "0930000009", models.NumberChangeStatusNew)

	request, err := storage.GetNumberChangeRequest(ctx, reqID)
	require.NoError(t, err)

	require.NoError(t, storage.ApplyNumberChange(ctx, request), "missing old number must not break the workflow")

	phones, err := storage.ListPhonesBySubscriber(ctx, subID)
	require.NoError(t, err)
	require.Len(t, phones, 1)
	require.Equal(t, "0930000009", phones[0].Number)
}

func TestDebtorsAggregation(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	factory := NewTestDataFactory(storage)
	debtorID := factory.CreateSubscriber(t, "Коваленко", "Іван", "", nil, nil)
	factory.CreateDebt(t, debtorID, 100.00, time.Now(), nil, models.DebtStatusActive)
	factory.CreateDebt(t, debtorID, 50.50, time.Now(), nil, models.DebtStatusActive)
	factory.CreateDebt(t, debtorID, 999.99, time.Now(), nil, models.DebtStatusPaid)

	cleanID := factory.CreateSubscriber(t, "Чистий", "Петро", "", nil, nil)
	factory.CreateDebt(t, cleanID, 77.70, time.Now(), nil, models.DebtStatusPaid)

	debtors, err := storage.ListDebtors(ctx)
	require.NoError(t, err)
	require.Len(t, debtors, 1, "paid-only subscriber must not be listed")
	require.Equal(t, debtorID, debtors[0].SubscriberID)
	require.InDelta(t, 150.50, debtors[0].TotalDebt, 0.001)
}

func TestSearchSubscribersWithWildcardPattern(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	factory := NewTestDataFactory(storage)
	factory.CreateSubscriber(t, "Коваленко", "Іван", "", nil, nil)
	factory.CreateSubscriber(t, "Ковальчук", "Олег", "", nil, nil)
	factory.CreateSubscriber(t, "Мельник", "Олена", "", nil, nil)

	// шаблон приходит уже в LIKE-виде: "Кова*" -> "Кова%"
	found, err := storage.SearchSubscribers(ctx, "Кова%")
	require.NoError(t, err)
	require.Len(t, found, 2)

	subID := factory.CreateSubscriber(t, "Ткаченко", "Юрій", "", nil, nil)
	factory.CreatePhone(t, "0675557788", models.PhoneTypeMobile, &subID, nil, true)

	byPhone, err := storage.SearchSubscribers(ctx, "0675557788")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	require.Equal(t, "Ткаченко", byPhone[0].Lastname)
}

func TestReportTemplates(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	factory := NewTestDataFactory(storage)
	streetID := factory.CreateStreet(t, "Грушевського", "вул.")
	addressID := factory.CreateAddress(t, streetID, "8", "12")
	factory.CreateSubscriber(t, "Коваленко", "Іван", "", &addressID, nil)
	factory.CreateSubscriber(t, "Коваленко", "Ігор", "", &addressID, nil)

	result, err := storage.RunReportTemplate(ctx, 5, models.ReportParams{Lastname: "Кова"})
	require.NoError(t, err)
	require.Equal(t, []string{"Прізвище", "Ім’я", "По батькові"}, result.Columns)
	require.Len(t, result.Rows, 2)
	require.NotNil(t, result.Total)
	require.Equal(t, 2, *result.Total)

	byStreet, err := storage.RunReportTemplate(ctx, 9, models.ReportParams{StreetName: "Грушев"})
	require.NoError(t, err)
	require.Len(t, byStreet.Rows, 2)
	require.NotNil(t, byStreet.Total)

	residents, err := storage.RunReportTemplate(ctx, 10, models.ReportParams{})
	require.NoError(t, err)
	require.Equal(t, []string{"Вулиця", "Кількість мешканців"}, residents.Columns)
	require.Len(t, residents.Rows, 1)

	unknown, err := storage.RunReportTemplate(ctx, 42, models.ReportParams{})
	require.NoError(t, err)
	require.Empty(t, unknown.Columns)
	require.Empty(t, unknown.Rows)
}

func TestRunCustomQuery(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	factory := NewTestDataFactory(storage)
	factory.CreateSubscriber(t, "Коваленко", "Іван", "", nil, nil)

	result, err := storage.RunCustomQuery(ctx, `SELECT lastname, firstname FROM subscribers`)
	require.NoError(t, err)
	require.Equal(t, []string{"lastname", "firstname"}, result.Columns)
	require.Len(t, result.Rows, 1)
	require.Equal(t, "Коваленко", result.Rows[0][0])

	_, err = storage.RunCustomQuery(ctx, `SELECT broken syntax here`)
	require.Error(t, err, "store errors must be propagated")

	// транзакция только для чтения: запись отклоняется базой
	_, err = storage.RunCustomQuery(ctx, `DELETE FROM subscribers`)
	require.Error(t, err)

	var count int
	require.NoError(t, storage.DB.QueryRow(`SELECT COUNT(*) FROM subscribers`).Scan(&count))
	require.Equal(t, 1, count, "custom SQL must not mutate data")
}

func TestUpdateSubscriberUpsertsAddressAndOffice(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	factory := NewTestDataFactory(storage)
	subID := factory.CreateSubscriber(t, "Савченко", "Олег", "", nil, nil)

	rows, err := storage.UpdateSubscriber(ctx, subID, models.UpdateSubscriberRequest{
		Lastname:     "Савченко",
		Firstname:    "Олег",
		Middlename:   "Іванович",
		StreetName:   "Лесі Українки",
		StreetType:   "вул.",
		Building:     "7",
		Apartment:    "",
		OfficeNumber: 58010,
	})
	require.NoError(t, err)
	require.Equal(t, 1, rows)

	details, err := storage.GetSubscriber(ctx, subID)
	require.NoError(t, err)
	require.NotNil(t, details.AddressID)
	require.NotNil(t, details.PostOfficeID)
	require.NotNil(t, details.OfficeNumber)
	require.Equal(t, 58010, *details.OfficeNumber)

	firstAddress := *details.AddressID

	// повторное редактирование переиспользует адрес и отделение
	rows, err = storage.UpdateSubscriber(ctx, subID, models.UpdateSubscriberRequest{
		Lastname:     "Савченко",
		Firstname:    "Олег",
		StreetName:   "Лесі Українки",
		StreetType:   "вул.",
		Building:     "9",
		OfficeNumber: 58011,
	})
	require.NoError(t, err)
	require.Equal(t, 1, rows)

	details, err = storage.GetSubscriber(ctx, subID)
	require.NoError(t, err)
	require.Equal(t, firstAddress, *details.AddressID)
	require.NotNil(t, details.Building)
	require.Equal(t, "9", *details.Building)

	rows, err = storage.UpdateSubscriber(ctx, subID+999, models.UpdateSubscriberRequest{
		Lastname: "Ніхто", Firstname: "Ніяк", StreetName: "Т", StreetType: "вул.",
		Building: "1", OfficeNumber: 1,
	})
	require.NoError(t, err)
	require.Equal(t, 0, rows, "missing subscriber is a silent no-op")
}

func TestUserAdministration(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	factory := NewTestDataFactory(storage)
	uid := uuid.New().String()
	factory.CreateUser(t, uid, "dispatcher", "$2a$10$hash", "user")

	rows, err := storage.UpdateUserRole(ctx, uid, models.RoleOperator)
	require.NoError(t, err)
	require.Equal(t, 1, rows)

	users, err := storage.ListUsers(ctx)
	require.NoError(t, err)
	var found *models.User
	for _, u := range users {
		if u.UID == uid {
			found = u
		}
	}
	require.NotNil(t, found)
	require.Equal(t, models.RoleOperator, found.Role)

	rows, err = storage.UpdateUserRole(ctx, uuid.New().String(), models.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, 0, rows, "unknown uid is a silent no-op")

	rows, err = storage.DeleteUser(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, 1, rows)
}
