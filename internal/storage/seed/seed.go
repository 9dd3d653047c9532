// Package seed наполняет пустую базу демонстрационными данными:
// администратор, операторы, спецслужбы и случайные абоненты с
// адресами, долгами, заявками и ремонтами. Каждая секция защищена
// проверкой счётчика и при повторном запуске ничего не дублирует.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/magabrotheeeer/telecom-registry/internal/lib/password"
	"github.com/magabrotheeeer/telecom-registry/internal/models"
	"github.com/magabrotheeeer/telecom-registry/internal/storage/repository"
)

var streets = []models.AddressFields{
	{StreetName: "Сторожинецька", StreetType: "вул."},
	{StreetName: "Шевченка", StreetType: "вул."},
	{StreetName: "Незалежності", StreetType: "проспект."},
	{StreetName: "Хотинська", StreetType: "вул."},
	{StreetName: "Гагаріна", StreetType: "вул."},
	{StreetName: "Головна", StreetType: "вул."},
	{StreetName: "Кобиляньської", StreetType: "вул."},
}

var firstnames = []string{
	"Богдан", "Олександр", "Олег", "Іван", "Дмитро",
	"Євген", "Ілля", "Микита", "Роман", "Сергій",
	"Андрій", "Юрій", "Максим", "Степан", "Арсен",
	"Тарас", "Володимир", "Петро", "Гнат", "Лев",
}

var lastnames = []string{
	"Коваленко", "Шевченко", "Ткаченко", "Іванов", "Петренко",
	"Коваль", "Маргер", "Пастух", "Гуменюк", "Мельник",
	"Бондар", "Кравець", "Савчук", "Мороз", "Гриценко",
	"Сидоренко", "Ігнатенко", "Лисенко", "Гордійчук", "Проценко",
}

var middlenames = []string{
	"Олександрович", "Ігорович", "Іванович", "Михайлович", "Андрійович",
	"Богданович", "Євгенович", "Дмитрович", "Володимирович", "Сергійович",
	"Юрійович", "Петрович", "Степанович", "Романович", "Максимович",
	"Тарасович", "Гнатович", "Олегович", "Левович", "Микитович",
}

var repairDescriptions = []string{
	"Ремонт телефонної лінії",
	"Заміна оптоволоконного кабелю",
	"Планове обслуговування мережі",
	"Усунення аварії",
	"Реконструкція узлової точки звʼязку",
}

// Run наполняет базу демонстрационными данными.
func Run(ctx context.Context, storage *repository.Storage, log *slog.Logger) error {
	const op = "seed.Run"

	steps := []func(context.Context, *repository.Storage, *slog.Logger) error{
		createAdmin,
		createMobileOperators,
		createSpecialServices,
		func(ctx context.Context, s *repository.Storage, log *slog.Logger) error {
			return createRandomSubscribers(ctx, s, log, 50)
		},
		func(ctx context.Context, s *repository.Storage, log *slog.Logger) error {
			return createRandomDebts(ctx, s, log, 9)
		},
		func(ctx context.Context, s *repository.Storage, log *slog.Logger) error {
			return createRandomNumberChangeRequests(ctx, s, log, 5)
		},
		func(ctx context.Context, s *repository.Storage, log *slog.Logger) error {
			return createRandomRepairs(ctx, s, log, 6)
		},
	}
	for _, step := range steps {
		if err := step(ctx, storage, log); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}

func tableCount(ctx context.Context, storage *repository.Storage, table string) (int, error) {
	var count int
	err := storage.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count)
	return count, err
}

func createAdmin(ctx context.Context, storage *repository.Storage, log *slog.Logger) error {
	count, err := tableCount(ctx, storage, "users")
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := password.Hash("admin")
	if err != nil {
		return err
	}
	if _, err := storage.CreateUser(ctx, "admin", hash, models.RoleAdmin); err != nil {
		return err
	}
	log.Info("seeded administrator account", slog.String("login", "admin"))
	return nil
}

func createMobileOperators(ctx context.Context, storage *repository.Storage, log *slog.Logger) error {
	count, err := tableCount(ctx, storage, "mobile_operators")
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	operators := []models.MobileOperator{
		{Name: "Kyivstar", Prefix: "067"},
		{Name: "Kyivstar", Prefix: "097"},
		{Name: "Vodafone", Prefix: "095"},
		{Name: "Vodafone", Prefix: "050"},
		{Name: "Lifecell", Prefix: "093"},
	}
	for _, operator := range operators {
		if _, err := storage.CreateOperator(ctx, operator.Name, operator.Prefix); err != nil {
			return err
		}
	}
	log.Info("seeded mobile operators", slog.Int("count", len(operators)))
	return nil
}

func createSpecialServices(ctx context.Context, storage *repository.Storage, log *slog.Logger) error {
	count, err := tableCount(ctx, storage, "special_services")
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	services := []models.CreateSpecialServiceRequest{
		{Name: "Пожежна служба", Number: "101", Description: "Надзвичайна служба, тушіння пожеж", Weekday: "ПН - НД", TimeStart: "00:00", TimeEnd: "23:59"},
		{Name: "Поліція", Number: "102", Description: "Служба поліції", Weekday: "ПН - НД", TimeStart: "00:00", TimeEnd: "23:59"},
		{Name: "Швидка допомога", Number: "103", Description: "Медична екстрена служба", Weekday: "ПН - НД", TimeStart: "00:00", TimeEnd: "23:59"},
		{Name: "Газова служба", Number: "104", Description: "Аварії газових мереж", Weekday: "ПН - НД", TimeStart: "00:00", TimeEnd: "23:59"},
	}
	for _, service := range services {
		if _, err := storage.CreateSpecialService(ctx, service); err != nil {
			return err
		}
	}
	log.Info("seeded special services", slog.Int("count", len(services)))
	return nil
}

func createRandomSubscribers(ctx context.Context, storage *repository.Storage, log *slog.Logger, n int) error {
	count, err := tableCount(ctx, storage, "subscribers")
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	operators, err := storage.ListOperators(ctx)
	if err != nil {
		return err
	}

	for range n {
		street := streets[rand.Intn(len(streets))]
		street.Building = fmt.Sprintf("%d", rand.Intn(120)+1)
		street.Apartment = fmt.Sprintf("%d", rand.Intn(20)+1)

		addressID, err := storage.CreateAddress(ctx, street)
		if err != nil {
			return err
		}
		officeID, err := storage.CreatePostOffice(ctx, 58000+rand.Intn(25)+1, &addressID)
		if err != nil {
			return err
		}

		subID, err := storage.CreateSubscriber(ctx, models.CreateSubscriberRequest{
			Lastname:   lastnames[rand.Intn(len(lastnames))],
			Firstname:  firstnames[rand.Intn(len(firstnames))],
			Middlename: middlenames[rand.Intn(len(middlenames))],
		})
		if err != nil {
			return err
		}
		if _, err := storage.DB.ExecContext(ctx,
			`UPDATE subscribers SET address_id = $1, post_office_id = $2 WHERE id = $3`,
			addressID, officeID, subID); err != nil {
			return err
		}

		operator := operators[rand.Intn(len(operators))]
		number := fmt.Sprintf("%s%07d", operator.Prefix, rand.Intn(10000000))
		if _, err := storage.CreatePhone(ctx, models.PhoneNumber{
			Number:       number,
			Type:         models.PhoneTypeMobile,
			SubscriberID: &subID,
			OperatorID:   &operator.ID,
			Active:       true,
		}); err != nil {
			return err
		}
	}
	log.Info("seeded random subscribers", slog.Int("count", n))
	return nil
}

func createRandomDebts(ctx context.Context, storage *repository.Storage, log *slog.Logger, n int) error {
	count, err := tableCount(ctx, storage, "debts")
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	subscribers, err := storage.ListSubscribers(ctx)
	if err != nil {
		return err
	}
	if len(subscribers) == 0 {
		log.Warn("no subscribers, skipping debt seeding")
		return nil
	}

	for range n {
		sub := subscribers[rand.Intn(len(subscribers))]
		amount := float64(rand.Intn(45000)+500) / 100
		dateStart := time.Date(2025, time.Month(rand.Intn(12)+1), rand.Intn(28)+1, 0, 0, 0, 0, time.UTC)
		deadline := dateStart.AddDate(0, 1, 0)
		status := models.DebtStatusActive
		if rand.Intn(3) == 0 {
			status = models.DebtStatusPaid
		}
		if _, err := storage.CreateDebt(ctx, sub.ID, amount, dateStart, &deadline, status); err != nil {
			return err
		}
	}
	log.Info("seeded random debts", slog.Int("count", n))
	return nil
}

func createRandomNumberChangeRequests(ctx context.Context, storage *repository.Storage, log *slog.Logger, n int) error {
	count, err := tableCount(ctx, storage, "number_change_requests")
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows, err := storage.DB.QueryContext(ctx,
		`SELECT pn.number, pn.subscriber_id
		 FROM phone_numbers pn
		 WHERE pn.type = 'mobile' AND pn.subscriber_id IS NOT NULL`)
	if err != nil {
		return err
	}
	defer func() {
		_ = rows.Close()
	}()

	type candidate struct {
		number string
		subID  int
	}
	var candidates []candidate
	for rows.Next() {
		var c candidate
		if err := rows.Scan(&c.number, &c.subID); err != nil {
			return err
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(candidates) == 0 {
		log.Warn("no mobile numbers, skipping number change request seeding")
		return nil
	}

	operators, err := storage.ListOperators(ctx)
	if err != nil {
		return err
	}
	statuses := []string{
		models.NumberChangeStatusNew,
		models.NumberChangeStatusProcessing,
		models.NumberChangeStatusDone,
	}

	for range n {
		c := candidates[rand.Intn(len(candidates))]
		operator := operators[rand.Intn(len(operators))]
		newNumber := fmt.Sprintf("%s%07d", operator.Prefix, rand.Intn(10000000))
		status := statuses[rand.Intn(len(statuses))]
		if _, err := storage.DB.ExecContext(ctx,
			`INSERT INTO number_change_requests
				 (subscriber_id, old_number, new_number, date_request, status)
			 VALUES ($1, $2, $3, $4, $5)`,
			c.subID, c.number, newNumber,
			time.Date(2025, time.Month(rand.Intn(12)+1), rand.Intn(28)+1, 0, 0, 0, 0, time.UTC),
			status); err != nil {
			return err
		}
	}
	log.Info("seeded random number change requests", slog.Int("count", n))
	return nil
}

func createRandomRepairs(ctx context.Context, storage *repository.Storage, log *slog.Logger, n int) error {
	count, err := tableCount(ctx, storage, "repair_works")
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows, err := storage.DB.QueryContext(ctx, `SELECT id FROM addresses`)
	if err != nil {
		return err
	}
	defer func() {
		_ = rows.Close()
	}()

	var addresses []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return err
		}
		addresses = append(addresses, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(addresses) == 0 {
		log.Warn("no addresses, skipping repair seeding")
		return nil
	}

	for range n {
		addressID := addresses[rand.Intn(len(addresses))]
		start := time.Date(2025, time.Month(rand.Intn(12)+1), rand.Intn(28)+1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, rand.Intn(10)+1)
		description := repairDescriptions[rand.Intn(len(repairDescriptions))]
		if _, err := storage.DB.ExecContext(ctx,
			`INSERT INTO repair_works (address_id, date_start, date_end, description)
			 VALUES ($1, $2, $3, $4)`,
			addressID, start, end, description); err != nil {
			return err
		}
	}
	log.Info("seeded random repairs", slog.Int("count", n))
	return nil
}
