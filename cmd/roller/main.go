package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/dicepool/internal/common/clock"
	"github.com/KirkDiggler/dicepool/internal/common/uuid"
	"github.com/KirkDiggler/dicepool/internal/config"
	"github.com/KirkDiggler/dicepool/internal/dice"
	dicePool "github.com/KirkDiggler/dicepool/internal/pool"
	poolRepo "github.com/KirkDiggler/dicepool/internal/repositories/pool"
	poolService "github.com/KirkDiggler/dicepool/internal/services/pool"
	"github.com/redis/go-redis/v9"
)

func main() {
	var (
		create   int
		label    string
		success  string
		double   string
		stunt    int
		wound    int
		rollID   string
		count    int
		rerollID string
		criteria string
		mode     string
		showID   string
		list     bool
		limit    int
	)

	flag.IntVar(&create, "create", unset, "roll a new pool of N dice")
	flag.StringVar(&label, "label", "", "name for a new pool")
	flag.StringVar(&success, "success", "", "success faces, e.g. 7,8,9,10 (default 7,8,9,10)")
	flag.StringVar(&double, "double", "", "double success faces, e.g. 10 (default 10)")
	flag.IntVar(&stunt, "stunt", 0, "stunt level (0-3)")
	flag.IntVar(&wound, "wound", 0, "wound penalty (-4-0)")
	flag.StringVar(&rollID, "roll", "", "roll every die of a stored pool again")
	flag.IntVar(&count, "count", unset, "dice requested with -roll (default: current dice count)")
	flag.StringVar(&rerollID, "reroll", "", "reroll dice of a stored pool")
	flag.StringVar(&criteria, "criteria", "not_success", "reroll criteria: not_success, not_10s or faces such as 1,2")
	flag.StringVar(&mode, "mode", "once", "reroll mode: once or until_none")
	flag.StringVar(&showID, "show", "", "show a stored pool")
	flag.BoolVar(&list, "list", false, "list recent pools")
	flag.IntVar(&limit, "limit", 10, "number of pools listed by -list")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	repo, err := poolRepo.NewRedis(&poolRepo.Config{
		RedisClient: redisClient,
		TTL:         cfg.PoolTTL,
	})
	if err != nil {
		log.Fatalf("Failed to create pool repository: %v", err)
	}

	svc, err := poolService.New(&poolService.Config{
		PoolRepo:        repo,
		DiceRoller:      dice.New(&dice.Config{Seed: cfg.DiceSeed}),
		Clock:           clock.New(),
		UUIDGenerator:   uuid.New(),
		MaxRerollPasses: cfg.MaxRerollPasses,
	})
	if err != nil {
		log.Fatalf("Failed to create pool service: %v", err)
	}

	// Interrupting stops an until_none reroll between passes
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	sel := selection{
		create:   create,
		rollID:   rollID,
		rerollID: rerollID,
		showID:   showID,
		list:     list,
	}

	switch sel.pick() {
	case actionCreate:
		successFaces, err := dicePool.ParseFaces(success)
		if err != nil {
			log.Fatalf("Invalid -success: %v", err)
		}
		doubleFaces, err := dicePool.ParseFaces(double)
		if err != nil {
			log.Fatalf("Invalid -double: %v", err)
		}

		out, err := svc.CreatePool(ctx, &poolService.CreatePoolInput{
			Count:   create,
			Label:   label,
			Success: successFaces,
			Double:  doubleFaces,
			Stunt:   stunt,
			Wound:   wound,
		})
		if err != nil {
			log.Fatalf("Failed to create pool: %v", err)
		}
		render(os.Stdout, out.Record, out.Evaluation)

	case actionRoll:
		input := &poolService.RollPoolInput{PoolID: rollID}
		if count != unset {
			input.Count = &count
		}

		out, err := svc.RollPool(ctx, input)
		if err != nil {
			log.Fatalf("Failed to roll pool: %v", err)
		}
		render(os.Stdout, out.Record, out.Evaluation)

	case actionReroll:
		c, err := dicePool.ParseCriteria(criteria)
		if err != nil {
			log.Fatalf("Invalid -criteria: %v", err)
		}
		m, err := dicePool.ParseMode(mode)
		if err != nil {
			log.Fatalf("Invalid -mode: %v", err)
		}

		out, err := svc.RerollPool(ctx, &poolService.RerollPoolInput{
			PoolID:   rerollID,
			Criteria: c,
			Mode:     m,
		})
		if errors.Is(err, poolService.ErrRerollLimit) {
			log.Fatalf("Gave up after %d passes, raise MAX_REROLL_PASSES (0 keeps rerolling until interrupted)", cfg.MaxRerollPasses)
		}
		if err != nil {
			log.Fatalf("Failed to reroll pool: %v", err)
		}
		render(os.Stdout, out.Record, out.Evaluation)
		fmt.Printf("Rerolled %d dice over %d passes\n", out.Rerolled, out.Passes)

	case actionShow:
		out, err := svc.GetPool(ctx, &poolService.GetPoolInput{PoolID: showID})
		if err != nil {
			log.Fatalf("Failed to get pool: %v", err)
		}
		render(os.Stdout, out.Record, out.Evaluation)

	case actionList:
		out, err := svc.ListPools(ctx, &poolService.ListPoolsInput{Limit: limit})
		if err != nil {
			log.Fatalf("Failed to list pools: %v", err)
		}
		renderList(os.Stdout, out.Records)

	default:
		flag.Usage()
		os.Exit(2)
	}
}
