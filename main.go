package main

import (
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jasonlvhit/gocron"
	"github.com/qiniu/x/log"

	"github.com/solutions/afroverseas/internal/common/utils"
	"github.com/solutions/afroverseas/internal/service/cloud"
	"github.com/solutions/afroverseas/internal/service/db"
	"github.com/solutions/afroverseas/internal/service/task"
	"github.com/solutions/afroverseas/internal/service/web"
)

var (
	configFilePath = "afroverseas.conf"
)

func main() {
	flag.StringVar(&configFilePath, "f", configFilePath, "configuration file to run afroverseas server")
	flag.Parse()

	utils.InitConf(configFilePath)
	log.SetOutputLevel(utils.DefaultConf.DebugLevel)
	rand.Seed(time.Now().UnixNano())

	sqlDB, err := db.NewPostgres(*utils.DefaultConf.Postgres)
	if err != nil {
		log.Fatalf("failed to open postgres, error %v", err)
	}
	if err := db.EnsureSchema(sqlDB); err != nil {
		log.Fatalf("failed to ensure schema, error %v", err)
	}

	storage, err := cloud.NewStorage(utils.DefaultConf)
	if err != nil {
		log.Fatalf("failed to create storage, error %v", err)
	}
	sender, err := cloud.NewMailSender(utils.DefaultConf)
	if err != nil {
		log.Fatalf("failed to create mail sender, error %v", err)
	}

	// 出站邮件队列，与请求生命周期解耦
	notifyTask := task.NewNotifyTask(utils.DefaultConf, sender)
	notifyTask.Start()

	ticketService := cloud.NewTicketService(utils.DefaultConf, storage)
	leadService := db.NewLeadService(sqlDB, utils.DefaultConf.RefNumberTag, ticketService, notifyTask, nil)
	jobService := db.NewJobService(sqlDB, nil)
	candidateService := db.NewCandidateService(sqlDB, nil)

	// 启动定时任务
	go func() {
		digestTask := task.NewDigestTask(leadService, notifyTask, utils.DefaultConf.Admin.Email)
		_ = gocron.Every(1).Day().At("08:00").Do(digestTask.Start)
		<-gocron.Start()
	}()

	// 启动 gin HTTP server。
	r, err := web.NewRouter(&utils.DefaultConf, leadService, jobService, candidateService, storage)
	if err != nil {
		log.Fatalf("failed to create gin HTTP server, error %v", err)
	}

	errch := make(chan error, 1)
	go func() {
		httpServerErr := r.Run(utils.DefaultConf.ListenAddr)
		errch <- httpServerErr
	}()

	qC := make(chan os.Signal, 1)
	signal.Notify(qC, syscall.SIGINT, syscall.SIGTERM)
	select {
	case s := <-qC:
		log.Info(s.String())
	case err = <-errch:
		log.Error("http server stopped, error", err.Error())
	}
	notifyTask.Stop()
}
