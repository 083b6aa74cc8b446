package dto

import (
	"time"

	"github.com/crownbraids/salon-scheduler/internal/models"
)

type AppointmentListDTO struct {
	ID           uint      `json:"id"`
	Date         string    `json:"date"`
	TimeSlot     string    `json:"time_slot"`
	StartTime    time.Time `json:"start_time"`
	Status       string    `json:"status"`
	BraiderID    string    `json:"braider_id"`
	BraiderName  string    `json:"braider_name"`
	CustomerName string    `json:"customer_name"`
	ServiceName  string    `json:"service_name"`
	ServicePrice int       `json:"service_price"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:           ap.ID,
		Date:         ap.Date,
		TimeSlot:     ap.TimeSlot,
		StartTime:    ap.StartTime,
		Status:       ap.Status,
		BraiderID:    ap.BraiderID,
		BraiderName:  ap.BraiderName,
		CustomerName: ap.CustomerName,
		ServiceName:  ap.ServiceName,
		ServicePrice: ap.ServicePrice,
	}
}

func FromAppointments(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
