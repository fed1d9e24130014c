package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"sockem/internal/api"
	"sockem/internal/config"
	"sockem/internal/sim"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment variables only")
	}

	appConfig := config.Load()
	simCfg := appConfig.Sim
	serverCfg := appConfig.Server

	log.Printf("config: %d TPS, difficulty=%s, port=%d", simCfg.TickRate, simCfg.Difficulty, serverCfg.Port)

	runner := sim.NewRunner(sim.RunnerConfig{
		TickRate: simCfg.TickRate,
		Seed:     simCfg.Seed,
	})
	runner.SetObservers(api.RecordTick, api.RecordPunch, api.RecordRoundOver)

	if simCfg.EventLogPath != "" {
		if err := runner.StartEventLog(simCfg.EventLogPath); err != nil {
			log.Printf("event log disabled: %v", err)
		}
	}

	runner.Start()

	// Autostart a match when a default difficulty is configured; the
	// API can restart at any difficulty later.
	if profile, ok := sim.DifficultyByName(simCfg.Difficulty); ok {
		runner.StartMatch(profile)
	}

	if err := api.StartDebugServer(api.DefaultObservabilityConfig()); err != nil {
		log.Printf("debug server error: %v", err)
	}

	server := api.NewServer(runner)

	// Graceful shutdown on SIGINT/SIGTERM
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("shutting down")
		server.Stop()
		runner.Stop()
		runner.StopEventLog()
		os.Exit(0)
	}()

	addr := fmt.Sprintf(":%d", serverCfg.Port)
	if err := server.Start(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
