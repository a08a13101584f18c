package service

import (
	"github.com/galactic-marines/gm-automation/internal/domain/contract"
)

type Instance struct {
	PlannedMessage contract.PlannedMessageService
	Akten          contract.AktenService
	Automation     contract.AutomationService
}

func NewInstance(dm contract.DataManager, notifier contract.Notifier, events contract.EventPublisher) *Instance {
	plannedService := newPlannedMessage(dm, notifier, events)
	aktenService := newAkten(dm, notifier, events)

	return &Instance{
		PlannedMessage: plannedService,
		Akten:          aktenService,
		Automation:     newAutomation(plannedService, aktenService),
	}
}
