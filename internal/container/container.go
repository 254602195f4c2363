package container

import (
	app "fitness-bot/internal/application"
	"fitness-bot/internal/domain/port"
)

type Container struct {
	UserService    *app.UserService
	ProfileService *app.ProfileService
	FoodService    *app.FoodService
	TrackerService *app.TrackerService
	Engine         *app.Engine
	Renderer       port.ProgressRenderer
}

func New(
	userRepo port.UserRepository,
	weather port.WeatherLookup,
	nutrition port.NutritionLookup,
	recommender port.FoodRecommender,
	renderer port.ProgressRenderer,
) *Container {
	userService := app.NewUserService(userRepo)
	profileService := app.NewProfileService(userService, weather)
	foodService := app.NewFoodService(userService, nutrition, recommender)
	trackerService := app.NewTrackerService(userService)

	return &Container{
		UserService:    userService,
		ProfileService: profileService,
		FoodService:    foodService,
		TrackerService: trackerService,
		Engine:         app.NewEngine(userService, profileService, foodService, trackerService),
		Renderer:       renderer,
	}
}
