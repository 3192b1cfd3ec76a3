package get_statistics

import (
	"time"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
)

// Request модель запроса статистики
type Request struct {
	WebsiteID int64
	Timezone  *string    // Часовой пояс сайта (nil - по умолчанию)
	AsOf      *time.Time // Момент расчета (nil - текущее время)
}

// Response статистика за последнее окно
type Response struct {
	AsOf        time.Time // Момент расчета в часовом поясе сайта
	WindowStart time.Time // Начало последнего окна
	Report      domain.StatisticsReport
}
