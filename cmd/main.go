package main

import (
	"fmt"
	"os"

	"chat-xml/internal"
	"chat-xml/moderation"
	"chat-xml/repositories"
	"chat-xml/schema"
	"chat-xml/services"
	"chat-xml/storage"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run opens the data file, wires the services and prints an integrity audit.
// Errors bubble up here so deferred cleanup always runs before exiting.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. The published schema must agree with the compiled rules
	definition, err := schema.LoadDefinition(config.SchemaFilepath)
	if err != nil {
		return fmt.Errorf("schema loading failed: %w", err)
	}
	if err := definition.Matches(); err != nil {
		return fmt.Errorf("schema %s: %w", config.SchemaFilepath, err)
	}

	// 3. Store, created with an empty skeleton on first run
	store, err := storage.Open(config.DataFilepath, schema.NewValidator(), log)
	if err != nil {
		return fmt.Errorf("data file opening failed: %w", err)
	}
	log.Info("Data file loaded", "path", store.Path())

	// 4. Repositories & services
	userRepository := repositories.NewUserRepository(store)
	contactRepository := repositories.NewContactRepository(store)
	groupRepository := repositories.NewGroupRepository(store)
	messageRepository := repositories.NewMessageRepository(store)

	var censor services.Censor
	if words := config.Words(); len(words) > 0 {
		char, err := internal.CharacterRune(config.CharReplacement)
		if err != nil {
			return err
		}
		moderator, err := moderation.NewModerator(words, char, log)
		if err != nil {
			return fmt.Errorf("moderator init failed: %w", err)
		}
		censor = moderator
	}

	messageService := services.NewMessageService(store, userRepository, contactRepository, groupRepository,
		messageRepository, censor, config.MaxContentLength, config.SearchLimit, log)

	// 5. Audit
	inventory, err := takeInventory(store)
	if err != nil {
		return err
	}
	report, err := messageService.ValidateDataIntegrity()
	if err != nil {
		return fmt.Errorf("integrity audit failed: %w", err)
	}
	printReport(os.Stdout, inventory, report)
	return nil
}
