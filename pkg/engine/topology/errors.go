package topology

import "errors"

// Load precondition errors. A load that fails any of these installs nothing.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("topology: grid must have at least one row and one column")
	// ErrMissingOuterWall indicates a perimeter cell that is not a wall.
	ErrMissingOuterWall = errors.New("topology: grid perimeter must be an unbroken wall ring")
	// ErrOneSidedGateway indicates a gateway with no room on its far side.
	ErrOneSidedGateway = errors.New("topology: gateway does not separate two rooms")
	// ErrUnwalkedGateway indicates a gateway cell no room boundary reaches,
	// such as one standing inside a room or set in a pillar.
	ErrUnwalkedGateway = errors.New("topology: gateway is not on any room boundary")
)

// Internal invariant errors raised by the boundary walk on malformed input.
var (
	// ErrWalkStepLimit indicates the walk did not return to its start cell.
	ErrWalkStepLimit = errors.New("topology: boundary walk exceeded its step ceiling")
	// ErrWalkOutOfBounds indicates the walk probed a cell outside the grid.
	ErrWalkOutOfBounds = errors.New("topology: boundary walk left the grid")
	// ErrWalkInvariant indicates the walk stood on a non-boundary cell.
	ErrWalkInvariant = errors.New("topology: boundary walk invariant violated")
)

// Query errors. These are recoverable.
var (
	// ErrRoomNotFound indicates an unknown room id.
	ErrRoomNotFound = errors.New("topology: room not found")
	// ErrGatewayNotFound indicates an unknown gateway id.
	ErrGatewayNotFound = errors.New("topology: gateway not found")
	// ErrBarrierNotFound indicates no barrier at the requested cell side.
	ErrBarrierNotFound = errors.New("topology: barrier not found")
	// ErrNoRoom indicates a location that has no room (a wall cell).
	ErrNoRoom = errors.New("topology: location has no room")
	// ErrOutOfBounds indicates a location outside the grid.
	ErrOutOfBounds = errors.New("topology: location out of bounds")
	// ErrNoRoute indicates two rooms that are not connected by gateways.
	ErrNoRoute = errors.New("topology: no route between rooms")
	// ErrNotLoaded indicates a RoomMap query before a successful Load.
	ErrNotLoaded = errors.New("topology: no map loaded")
)
