package di

import (
	"fmt"

	"gorm.io/gorm"

	"buildtrack/application/serviceimpl"
	"buildtrack/domain/repositories"
	"buildtrack/domain/services"
	"buildtrack/infrastructure/postgres"
	"buildtrack/interfaces/api/handlers"
	"buildtrack/pkg/config"
	"buildtrack/pkg/logger"
)

// Container wires config, the shared connection pool, repositories and
// services. The pool is created once here and passed down explicitly; nothing
// below this layer reaches for globals.
type Container struct {
	Config *config.Config

	DB *gorm.DB

	TaskRepository     repositories.TaskRepository
	LaborRepository    repositories.LaborRepository
	MaterialRepository repositories.MaterialRepository

	SchemaService   services.SchemaService
	TaskService     services.TaskService
	LaborService    services.LaborService
	MaterialService services.MaterialService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initDatabase(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	err := logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Info("Logger initialized", "level", c.Config.Log.Level, "format", c.Config.Log.Format)
	return nil
}

func (c *Container) initDatabase() error {
	db, err := postgres.NewDatabase(c.Config.Database.DSN())
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connection established")
	return nil
}

func (c *Container) initRepositories() {
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	c.LaborRepository = postgres.NewLaborRepository(c.DB)
	c.MaterialRepository = postgres.NewMaterialRepository(c.DB)
}

func (c *Container) initServices() {
	c.SchemaService = serviceimpl.NewSchemaService(c.DB)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository)
	c.LaborService = serviceimpl.NewLaborService(c.LaborRepository)
	c.MaterialService = serviceimpl.NewMaterialService(c.MaterialRepository)
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		SchemaService:   c.SchemaService,
		TaskService:     c.TaskService,
		LaborService:    c.LaborService,
		MaterialService: c.MaterialService,
		UploadMaxBytes:  c.Config.Upload.MaxBytes,
	}
}

func (c *Container) Cleanup() error {
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Close(); err != nil {
			return err
		}
		logger.Info("Database connection closed")
	}
	return nil
}
