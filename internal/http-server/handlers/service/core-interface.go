package service

import "CallRelay/entity"

type Core interface {
	Status() entity.ServiceStatus
}
