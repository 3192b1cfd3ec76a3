package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SiteBookings/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	WebsiteID       int64   // ID сайта
	Timezone        *string // Часовой пояс сайта (nil - по умолчанию)
	Date            string  // Дата в формате YYYY-MM-DD
	DurationMinutes int     // Длительность бронирования
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time          // Дата в часовом поясе сайта
	DurationMinutes int                // Длительность бронирования
	Timezone        string             // Часовой пояс, в котором считались слоты
	Slots           []types.TimeString // Время начала свободных слотов по возрастанию
}
