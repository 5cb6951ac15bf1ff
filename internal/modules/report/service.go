package report

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"officerent/internal/domain"
)

const (
	fontRegular = "TimesNewRomanRegular.ttf"
	fontBold    = "TimesNewRomanBold.ttf"

	marginX    = 30.0
	lineStep   = 20.0
	bottomPad  = 50.0
	topRestart = 30.0
)

type Service struct {
	users   UserLister
	offices OfficeLister
	apps    ApplicationLister
	fontDir string
}

func NewService(users UserLister, offices OfficeLister, apps ApplicationLister, fontDir string) *Service {
	return &Service{
		users:   users,
		offices: offices,
		apps:    apps,
		fontDir: fontDir,
	}
}

// Generate собирает сводный PDF-отчёт: счётчики и листинги пользователей,
// офисов и заявок. Снимок не сериализуется транзакцией — три listing-а
// читаются подряд, для отчёта этого достаточно.
func (s *Service) Generate(ctx context.Context) (data []byte, filename string, err error) {
	users, err := s.users.ListNonAdmin(ctx)
	if err != nil {
		return nil, "", err
	}
	offices, err := s.offices.GetAll(ctx)
	if err != nil {
		return nil, "", err
	}
	apps, err := s.apps.GetAll(ctx)
	if err != nil {
		return nil, "", err
	}

	timestamp := time.Now().Format("2006-01-02-15:04:05")

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.AddUTF8Font("TimesNewRoman", "", filepath.Join(s.fontDir, fontRegular))
	pdf.AddUTF8Font("TimesNewRoman", "B", filepath.Join(s.fontDir, fontBold))
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	width, height := pdf.GetPageSize()

	pdf.SetFont("TimesNewRoman", "B", 18)
	pdf.Text(marginX, 30, fmt.Sprintf("Отчёт о системе %s", timestamp))

	pdf.SetFont("TimesNewRoman", "B", 14)
	pdf.Text(marginX, 60, "Общая информация о системе")

	pdf.SetFont("TimesNewRoman", "", 12)
	pdf.Text(marginX, 80, fmt.Sprintf("Количество зарегистрированных пользователей: %d", len(users)))
	pdf.Text(marginX, 100, fmt.Sprintf("Количество офисов: %d", len(offices)))
	pdf.Text(marginX, 120, fmt.Sprintf("Количество заявок: %d", len(apps)))

	pdf.SetFont("TimesNewRoman", "B", 14)
	pdf.Text(marginX, 160, "Информация о пользователях")

	y := 180.0
	pdf.SetFont("TimesNewRoman", "", 12)
	for _, u := range users {
		y = writeWrapped(pdf, userLine(u), width, height, y)
	}

	y = sectionHeader(pdf, "Информация об офисах", height, y)
	for _, o := range offices {
		y = writeWrapped(pdf, officeLine(o), width, height, y)
	}

	y = sectionHeader(pdf, "Информация о заявках", height, y)
	for _, a := range apps {
		y = writeWrapped(pdf, applicationLine(a), width, height, y)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("report_%s.pdf", timestamp), nil
}

func sectionHeader(pdf *fpdf.Fpdf, title string, height, y float64) float64 {
	if y+60 > height-bottomPad {
		pdf.AddPage()
		y = topRestart
	}
	pdf.SetFont("TimesNewRoman", "B", 14)
	pdf.Text(marginX, y+40, title)
	pdf.SetFont("TimesNewRoman", "", 12)
	return y + 60
}

func writeWrapped(pdf *fpdf.Fpdf, text string, width, height, y float64) float64 {
	for _, line := range pdf.SplitText(text, width-2*marginX) {
		pdf.Text(marginX, y, line)
		y += lineStep
		if y > height-bottomPad {
			pdf.AddPage()
			y = topRestart
		}
	}
	return y
}

func userLine(u domain.User) string {
	status := "Разблокирован"
	if u.Blocked {
		status = "Заблокирован"
	}
	tel := strings.ReplaceAll(u.Tel, "-", "")
	return fmt.Sprintf("ID: %d, Имя: %s, Фамилия: %s, Телефон: +%s, Email: %s, Статус: %s",
		u.ID, u.FirstName, u.LastName, tel, u.Email, status)
}

func officeLine(o domain.Office) string {
	status := "Неактивен"
	if o.Active {
		status = "Активен"
	}
	return fmt.Sprintf("ID: %d, Название: %s, Адрес: %s, Цена: %g BYN, Площадь: %g м2, Статус: %s",
		o.ID, o.Name, o.Address, o.Price, o.Area, status)
}

func applicationLine(a domain.Application) string {
	var status string
	switch a.Status {
	case domain.ApplicationPending:
		status = "В процессе"
	case domain.ApplicationCancelled:
		status = "Отменена"
	default:
		status = "Одобрена"
	}
	return fmt.Sprintf("ID: %d, ID пользователя: %d, ID офиса: %d, Статус: %s",
		a.ID, a.UserID, a.OfficeID, status)
}
