package background

import (
	"context"
	"errors"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/foodbridge-inc/foodbridge-api/notify"
	"github.com/foodbridge-inc/foodbridge-api/realtime"
	"github.com/foodbridge-inc/foodbridge-api/store"
)

// BackgroundManager is a struct for foodbridge background jobs
type BackgroundManager struct {
	store store.MongoStore

	broadcaster realtime.Broadcaster
	notifier    notify.Notifier

	taskServer *machinery.Server

	worker *machinery.Worker
}

// New builds a background manager sharing the broadcaster of the serving
// process, so expiry broadcasts reach the connected clients.
func New(mongoClient *mongo.Client, taskServer *machinery.Server, broadcaster realtime.Broadcaster) *BackgroundManager {
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	return &BackgroundManager{
		store:       mongoStore,
		broadcaster: broadcaster,
		notifier:    notify.NewCenter(mongoStore, broadcaster),
		taskServer:  taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("foodbridge-worker", 5)
	return m.worker.Launch()
}

// Schedule enqueues the expiry sweep on a fixed interval until the
// context is cancelled.
func (m *BackgroundManager) Schedule(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := m.taskServer.SendTask(&tasks.Signature{
				Name: TaskExpireListings,
			}); err != nil {
				log.WithField("prefix", "background").WithError(err).Error("enqueue expiry sweep")
			}
		}
	}
}
