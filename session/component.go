package session

// MovementComponent advances the player's position from input.
type MovementComponent interface {
	Tick(in Input, dt float32)
}

// InteractionComponent raycasts for interactables and dispatches interact input to them.
type InteractionComponent interface {
	Tick(in Input)
}

// ObjectsComponent animates the state machines of interactable objects.
type ObjectsComponent interface {
	Tick(dt float32)
}

// ZonesComponent fires zone triggers and ambient scares.
type ZonesComponent interface {
	Tick(dt float32)
}

// EntityComponent drives the antagonist.
type EntityComponent interface {
	Tick(dt float32)
}

// CinematicComponent starts the chapter-ending cinematic. Start returns false if the cinematic
// already ran in this session.
type CinematicComponent interface {
	Start() bool
}

// SetMovement sets the movement component of the session.
func (s *Session) SetMovement(c MovementComponent) {
	s.movement = c
}

// SetInteraction sets the interaction component of the session.
func (s *Session) SetInteraction(c InteractionComponent) {
	s.interaction = c
}

// SetObjects sets the object animation component of the session.
func (s *Session) SetObjects(c ObjectsComponent) {
	s.objects = c
}

// SetZones sets the zone trigger component of the session.
func (s *Session) SetZones(c ZonesComponent) {
	s.zones = c
}

// SetEntity sets the entity component of the session.
func (s *Session) SetEntity(c EntityComponent) {
	s.entity = c
}

// SetCinematic sets the cinematic component of the session.
func (s *Session) SetCinematic(c CinematicComponent) {
	s.cinematic = c
}
