package backend

import (
	"context"
	"giya-service/internal/app/contracts"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/schemas"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"
)

type appointmentsBackend struct {
	client *Client
}

func NewAppointmentsBackend(client *Client) contracts.AppointmentsBackend {
	return &appointmentsBackend{client: client}
}

// List filters by carer or professional. Zero ids are left out of the query.
func (b *appointmentsBackend) List(ctx context.Context, carerID, professionalID int) (*schemas.Paginated[schemas.Appointment], error) {
	query := url.Values{}
	if carerID != 0 {
		query.Set(constvars.URLQueryParamCarerID, strconv.Itoa(carerID))
	}
	if professionalID != 0 {
		query.Set(constvars.URLQueryParamProfessionalID, strconv.Itoa(professionalID))
	}
	raw, err := b.client.Do(ctx, constvars.MethodGet, "/appointments", query, nil, "")
	if err != nil {
		return nil, err
	}
	return parse[schemas.Paginated[schemas.Appointment]](raw, constvars.ResourceAppointments)
}

func (b *appointmentsBackend) Create(ctx context.Context, payload *schemas.AppointmentPayload) (*schemas.Appointment, error) {
	raw, err := b.client.sendJSON(ctx, constvars.MethodPost, "/appointments", payload)
	if err != nil {
		return nil, err
	}
	return parse[schemas.Appointment](raw, constvars.ResourceAppointments)
}

func (b *appointmentsBackend) Cancel(ctx context.Context, appointmentID int) (*schemas.Appointment, error) {
	raw, err := b.client.Do(ctx, constvars.MethodPost, idPath(constvars.ResourceAppointments, appointmentID, "cancel"), nil, nil, "")
	if err != nil {
		return nil, err
	}
	return parse[schemas.Appointment](raw, constvars.ResourceAppointments)
}

func (b *appointmentsBackend) AvailableTimeslots(ctx context.Context, professionalID int, startDate, endDate string) ([]schemas.AvailableTimeslots, error) {
	query := url.Values{}
	query.Set(constvars.URLQueryParamProfessionalID, strconv.Itoa(professionalID))
	if startDate != "" {
		query.Set(constvars.URLQueryParamStartDate, startDate)
	}
	if endDate != "" {
		query.Set(constvars.URLQueryParamEndDate, endDate)
	}
	raw, err := b.client.Do(ctx, constvars.MethodGet, "/appointments/available-timeslots", query, nil, "")
	if err != nil {
		return nil, err
	}
	entries, err := parse[[]schemas.AvailableTimeslots](raw, constvars.ResourceTimeslots)
	if err != nil {
		return nil, err
	}
	return *entries, nil
}

func (b *appointmentsBackend) CounselingToken(ctx context.Context, code string) (string, error) {
	query := url.Values{}
	query.Set(constvars.URLQueryParamCode, code)
	raw, err := b.client.Do(ctx, constvars.MethodGet, "/appointments/get-appointment-token/", query, nil, "")
	if err != nil {
		return "", err
	}
	return gjson.GetBytes(raw, "token").String(), nil
}
