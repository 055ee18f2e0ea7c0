package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/skywatch/cosmoscan/internal/analyze"
	"github.com/skywatch/cosmoscan/internal/api/exoarchive"
	"github.com/skywatch/cosmoscan/internal/api/simbad"
	"github.com/skywatch/cosmoscan/internal/config"
	"github.com/skywatch/cosmoscan/internal/database"
	"github.com/skywatch/cosmoscan/internal/lightcurve"
	"github.com/skywatch/cosmoscan/internal/notify"
	"github.com/skywatch/cosmoscan/models"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandling(cancel)

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// 2. Configure logging
	setupLogging(cfg.LogLevel)
	log.Info().Msg("Starting cosmoscan analyzer")
	printConfig(cfg)

	// 3. Load or synthesize the light curve
	curve, err := loadCurve(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load light curve")
	}
	log.Info().Int("samples", curve.Len()).Msg("Light curve ready")

	// 4. Run the analysis
	analyzer := analyze.New(analyze.Options{
		Sensitivity:       cfg.Sensitivity,
		SignificanceLevel: cfg.SignificanceLevel,
	}, log.Logger)

	result, err := analyzer.AnalyzeLightCurve(curve.Time, curve.Flux, analyze.LightCurveOptions{
		DetectPlanets:     true,
		DetectTransients:  true,
		AnalyzeVibrations: true,
		MinPeriodDays:     cfg.MinPeriodDays,
		MaxPeriodDays:     cfg.MaxPeriodDays,
		CadenceMinutes:    cfg.CadenceMinutes,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Analysis failed")
	}

	pat, err := analyzer.AnalyzeSignal(curve.Flux, cfg.SampleRateHz)
	if err != nil {
		log.Error().Err(err).Msg("Pattern analysis failed")
	} else {
		result.Pattern = pat
	}

	// 5. Print reports
	fmt.Println(analyze.DetectionReport(result))
	if result.Seismology != nil {
		fmt.Println(analyze.SeismologyReport(result.Seismology))
	}
	if result.Pattern != nil {
		fmt.Println(analyze.PatternReport(result.Pattern))
	}

	// 6. Cross-check against the archives
	crossCheckPlanets(ctx, cfg, result.Planets)
	checkKnownObject(ctx, cfg)

	// 7. Persist and alert
	if cfg.DatabaseEnabled() {
		persistResults(cfg, curve, result)
	}
	if cfg.TelegramEnabled() {
		sendAlerts(cfg, result)
	}

	log.Info().Msg("Analysis complete")
}

// setupSignalHandling configures signal handling for graceful shutdown
func setupSignalHandling(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Info().Msg("Shutdown signal received, exiting...")
		cancel()
		os.Exit(0)
	}()
}

// setupLogging configures the logger
func setupLogging(logLevel string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(level)
}

// printConfig outputs the current configuration
func printConfig(cfg *config.Config) {
	log.Info().
		Str("Object", cfg.ObjectName).
		Str("Mission", cfg.Mission).
		Float64("Sensitivity", cfg.Sensitivity).
		Float64("MinPeriodDays", cfg.MinPeriodDays).
		Float64("MaxPeriodDays", cfg.MaxPeriodDays).
		Float64("CadenceMinutes", cfg.CadenceMinutes).
		Bool("Database", cfg.DatabaseEnabled()).
		Bool("Telegram", cfg.TelegramEnabled()).
		Msg("Configuration loaded")
}

// loadCurve reads the configured CSV or builds a synthetic demo curve with a
// known transit, stellar oscillations, an outburst and noise.
func loadCurve(cfg *config.Config) (*lightcurve.Curve, error) {
	if cfg.InputPath != "" {
		return lightcurve.Load(cfg.InputPath)
	}

	log.Info().Msg("No input file configured, generating synthetic light curve")
	gen := lightcurve.NewSynthetic(time.Now().UnixNano())
	curve := gen.Flat(5000, 30)
	gen.InjectTransit(curve, 5.0, 0.01, 0.1)
	// 150 uHz sits well under the Nyquist limit of the default 30-minute
	// analysis cadence.
	gen.InjectOscillation(curve, 150, 0.0005)
	gen.InjectOutburst(curve, 20, 2, 0.2)
	gen.AddNoise(curve, 0.001)
	return curve, nil
}

// crossCheckPlanets flags candidates whose period matches a confirmed planet.
func crossCheckPlanets(ctx context.Context, cfg *config.Config, planets []models.PlanetCandidate) {
	if len(planets) == 0 {
		return
	}
	client := exoarchive.NewClient(exoarchive.ClientOptions{
		TAPURL:         cfg.ExoArchiveURL,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
	}, log.Logger)

	for _, p := range planets {
		matches, err := client.MatchPeriod(ctx, p.PeriodDays, 0.05)
		if err != nil {
			log.Warn().Err(err).Msg("Archive cross-check failed")
			return
		}
		if len(matches) > 0 {
			log.Info().
				Float64("period_days", p.PeriodDays).
				Str("known_planet", matches[0].Name).
				Msg("Candidate matches a confirmed planet")
		} else {
			log.Info().
				Float64("period_days", p.PeriodDays).
				Msg("No confirmed planet at this period")
		}
	}
}

// checkKnownObject cone-searches SIMBAD around the configured target
// position to flag it as known or potentially new. When no coordinates are
// configured the target name is resolved first; synthetic demo runs skip the
// check entirely.
func checkKnownObject(ctx context.Context, cfg *config.Config) {
	if cfg.ObjectRA == 0 && cfg.ObjectDec == 0 && cfg.InputPath == "" {
		return
	}
	client := simbad.NewClient(simbad.ClientOptions{
		BaseURL:        cfg.SimbadURL,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
	}, log.Logger)

	ra, dec := cfg.ObjectRA, cfg.ObjectDec
	if ra == 0 && dec == 0 {
		obj, err := client.LookupName(ctx, cfg.ObjectName)
		if err != nil {
			log.Warn().Err(err).Msg("SIMBAD name lookup failed")
			return
		}
		if obj == nil {
			log.Info().Str("object", cfg.ObjectName).Msg("Target not in SIMBAD")
			return
		}
		ra, dec = obj.RA, obj.Dec
	}

	result, err := client.CheckCoordinates(ctx, ra, dec)
	if err != nil {
		log.Warn().Err(err).Msg("SIMBAD cross-check failed")
		return
	}
	event := log.Info().Str("status", result.Status).Int("matches", result.TotalObjects)
	if result.Primary != nil {
		event = event.
			Str("main_id", result.Primary.MainID).
			Str("object_type", result.Primary.ObjectType)
	}
	event.Msg("SIMBAD cross-check")
}

// persistResults saves the observation and its detections.
func persistResults(cfg *config.Config, curve *lightcurve.Curve, result *models.AnalysisResult) {
	db, err := database.New(database.ConnectionParams{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		log.Error().Err(err).Msg("Database connection failed")
		return
	}
	defer db.Close()

	objectID, err := db.SaveObject(cfg.ObjectName, cfg.ObjectRA, cfg.ObjectDec, cfg.Mission)
	if err != nil {
		log.Error().Err(err).Msg("Saving object failed")
		return
	}
	span := curve.Time[curve.Len()-1] - curve.Time[0]
	obsID, err := db.SaveObservation(objectID, fmt.Sprintf("%.0fmin", cfg.CadenceMinutes), curve.Len(), span)
	if err != nil {
		log.Error().Err(err).Msg("Saving observation failed")
		return
	}

	if err := db.SavePlanets(obsID, result.Planets); err != nil {
		log.Error().Err(err).Msg("Saving planets failed")
	}
	if err := db.SaveTransients(obsID, result.Transients); err != nil {
		log.Error().Err(err).Msg("Saving transients failed")
	}
	for _, p := range result.Planets {
		if p.Confidence <= 70 {
			continue
		}
		params, _ := json.Marshal(p)
		status := "CANDIDATE"
		if p.Confidence > 85 {
			status = "NEW"
		}
		err := db.SaveDiscovery(obsID, database.Discovery{
			Type:       "planet",
			Status:     status,
			Confidence: p.Confidence,
			Parameters: string(params),
		})
		if err != nil {
			log.Error().Err(err).Msg("Saving discovery failed")
		}
	}
	log.Info().Int64("observation_id", obsID).Msg("Results persisted")
}

// sendAlerts posts high-confidence findings to Telegram.
func sendAlerts(cfg *config.Config, result *models.AnalysisResult) {
	notifier, err := notify.New(cfg.TelegramToken, cfg.TelegramChatID, log.Logger)
	if err != nil {
		log.Error().Err(err).Msg("Telegram setup failed")
		return
	}

	for _, p := range result.Planets {
		if p.Confidence > 85 {
			if err := notifier.AlertPlanet(cfg.ObjectName, p); err != nil {
				return
			}
		}
	}
	for _, t := range result.Transients {
		if t.Type == "Supernova" || t.Type == "Nova" {
			if err := notifier.AlertTransient(cfg.ObjectName, t); err != nil {
				return
			}
		}
	}
	if result.Pattern != nil && result.Pattern.Artificiality.Score >= 50 {
		_ = notifier.AlertArtificialSignal(cfg.ObjectName, result.Pattern.Artificiality)
	}
}
