package system

// FoodSystem drops one food per fixed step; placement never checks occupancy
type FoodSystem struct{}

func NewFoodSystem() *FoodSystem {
	return &FoodSystem{}
}

func (s *FoodSystem) Name() string {
	return "food"
}

func (s *FoodSystem) Update(w *World) {
	w.Snake.SpawnFood()
}
