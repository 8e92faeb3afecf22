package orders

import "github.com/marromlanches/storefront-backend/pkg/enums"

// StatusInfo describes how an order status renders and where it can move.
// Next and Previous are nil at the edges of the lifecycle.
type StatusInfo struct {
	Label     string
	Next      *enums.OrderStatus
	Previous  *enums.OrderStatus
	CanCancel bool
	Known     bool
}

var statusTable = map[enums.OrderStatus]StatusInfo{
	enums.OrderStatusPending: {
		Label:     "Pendente",
		Next:      statusPtr(enums.OrderStatusPreparing),
		CanCancel: true,
		Known:     true,
	},
	enums.OrderStatusPreparing: {
		Label:     "Preparando",
		Next:      statusPtr(enums.OrderStatusReady),
		Previous:  statusPtr(enums.OrderStatusPending),
		CanCancel: true,
		Known:     true,
	},
	enums.OrderStatusReady: {
		Label:    "Pronto",
		Next:     statusPtr(enums.OrderStatusDelivered),
		Previous: statusPtr(enums.OrderStatusPreparing),
		Known:    true,
	},
	enums.OrderStatusDelivered: {
		Label: "Entregue",
		Known: true,
	},
	enums.OrderStatusCancelled: {
		Label: "Cancelado",
		Known: true,
	},

	// Legacy statuses still present in historical rows. They advance back
	// onto the canonical path and never reappear after that.
	enums.OrderStatusAccepted: {
		Label:    "Aceito",
		Next:     statusPtr(enums.OrderStatusReady),
		Previous: statusPtr(enums.OrderStatusPending),
		Known:    true,
	},
	enums.OrderStatusOutForDelivery: {
		Label:    "Saiu para entrega",
		Next:     statusPtr(enums.OrderStatusDelivered),
		Previous: statusPtr(enums.OrderStatusReady),
		Known:    true,
	},
}

// InfoFor returns the lifecycle info for a raw status value. Unknown values
// are display-only: the raw string becomes the label and no transitions are
// offered, so an unrecognized row never breaks the board.
func InfoFor(raw string) StatusInfo {
	if info, ok := statusTable[enums.OrderStatus(raw)]; ok {
		return info
	}
	return StatusInfo{Label: raw}
}

// NextStatus returns the status an advance lands on, or false when the
// current status has no forward transition.
func NextStatus(current enums.OrderStatus) (enums.OrderStatus, bool) {
	info := InfoFor(string(current))
	if info.Next == nil {
		return "", false
	}
	return *info.Next, true
}

// PreviousStatus returns the status a revert lands on, or false when the
// current status has no backward transition.
func PreviousStatus(current enums.OrderStatus) (enums.OrderStatus, bool) {
	info := InfoFor(string(current))
	if info.Previous == nil {
		return "", false
	}
	return *info.Previous, true
}

// CanCancel reports whether an order in the given status may be cancelled.
func CanCancel(current enums.OrderStatus) bool {
	return InfoFor(string(current)).CanCancel
}

func statusPtr(s enums.OrderStatus) *enums.OrderStatus {
	return &s
}
