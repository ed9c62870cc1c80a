package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const QueueNotificacion = "jobs:notificacion"

// Notification job types.
const (
	NotificacionBienvenida   = "bienvenida"
	NotificacionTicketCreado = "ticket_creado"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// NotificacionPayload carries what the mail worker needs to compose the
// message; nothing is re-read from the DB.
type NotificacionPayload struct {
	Tipo         string `json:"tipo"`
	Destinatario string `json:"destinatario"`
	Nombre       string `json:"nombre"`
	CodTicket    string `json:"codticket,omitempty"`
	TipoServicio string `json:"tiposervicio,omitempty"`
	Fecha        string `json:"fecha,omitempty"`
}

// Dispatcher enqueues async jobs into a Redis list.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueNotificacion pushes a notification job to Redis. Best effort:
// callers log the error and continue, the business write already committed.
func (d *Dispatcher) EnqueueNotificacion(ctx context.Context, p NotificacionPayload) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	job := Job{ID: uuid.NewString(), Type: p.Tipo, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, QueueNotificacion, encoded).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming the
// notification queue. Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, mailer *infra.Mailer, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, mailer, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, mailer *infra.Mailer, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueNotificacion).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			handleJob(ctx, mailer, id, []byte(result[1]))
		}
	}
}

func handleJob(ctx context.Context, mailer *infra.Mailer, workerID int, raw []byte) {
	var job Job
	if err := json.Unmarshal(raw, &job); err != nil {
		log.Error().Int("worker", workerID).Err(err).Msg("malformed job discarded")
		return
	}
	var p NotificacionPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		log.Error().Int("worker", workerID).Str("job_id", job.ID).Err(err).Msg("malformed payload discarded")
		return
	}

	var err error
	switch p.Tipo {
	case NotificacionBienvenida:
		err = mailer.EnviarBienvenida(p.Destinatario, p.Nombre)
	case NotificacionTicketCreado:
		err = mailer.EnviarTicketCreado(p.Destinatario, p.Nombre, p.CodTicket, p.TipoServicio, p.Fecha)
	default:
		log.Warn().Str("tipo", p.Tipo).Msg("unknown notification type discarded")
		return
	}
	if err != nil {
		// No retry queue: a lost notification is acceptable, the ticket
		// itself is already durable.
		log.Error().Int("worker", workerID).Str("job_id", job.ID).Err(err).Msg("notification send failed")
		return
	}
	log.Info().Int("worker", workerID).Str("job_id", job.ID).Str("tipo", p.Tipo).Msg("notification sent")
}
