// Package delivery 订单配送：统一的 Service 接口与外部物流适配器
package delivery

import (
	"strconv"

	"patternkit/showcase/notify"
	"patternkit/validation"
)

// Service 配送能力
type Service interface {
	// Deliver 发出订单
	Deliver(orderID string) error
	// Status 查询订单配送状态
	Status(orderID string) (string, error)
}

// InternalService 内部配送（直接实现）
type InternalService struct {
	sink notify.Sink
}

func NewInternalService(sink notify.Sink) *InternalService {
	return &InternalService{sink: sink}
}

func (s *InternalService) Deliver(orderID string) error {
	s.sink.Emit("Order " + orderID + " is being delivered by the internal service.")
	return nil
}

func (s *InternalService) Status(orderID string) (string, error) {
	return "Status of order " + orderID + ": In Progress", nil
}

// LogisticsA 外部物流 A，只接受整数编号
type LogisticsA struct {
	sink notify.Sink
}

func NewLogisticsA(sink notify.Sink) *LogisticsA { return &LogisticsA{sink: sink} }

func (l *LogisticsA) ShipItem(itemID int) {
	l.sink.Emit("Item " + strconv.Itoa(itemID) + " shipped by External Logistics Service A.")
}

func (l *LogisticsA) TrackShipment(shipmentID int) string {
	return "Tracking info for shipment " + strconv.Itoa(shipmentID) + ": In Transit"
}

// LogisticsB 外部物流 B，使用文本包裹信息
type LogisticsB struct {
	sink notify.Sink
}

func NewLogisticsB(sink notify.Sink) *LogisticsB { return &LogisticsB{sink: sink} }

func (l *LogisticsB) SendPackage(packageInfo string) {
	l.sink.Emit("Package " + packageInfo + " sent by External Logistics Service B.")
}

func (l *LogisticsB) CheckPackageStatus(trackingCode string) string {
	return "Status for package with tracking code " + trackingCode + ": Delivered"
}

// LogisticsAClient 物流 A 的方法集
type LogisticsAClient interface {
	ShipItem(itemID int)
	TrackShipment(shipmentID int) string
}

// LogisticsBClient 物流 B 的方法集
type LogisticsBClient interface {
	SendPackage(packageInfo string)
	CheckPackageStatus(trackingCode string) string
}

// LogisticsAdapterA 把文本订单号解析为整数后转发给物流 A
//
// 订单号不是数字时返回 INVALID_INPUT，物流 A 不会被调用。
type LogisticsAdapterA struct {
	service LogisticsAClient
}

func NewLogisticsAdapterA(service LogisticsAClient) *LogisticsAdapterA {
	return &LogisticsAdapterA{service: service}
}

func (a *LogisticsAdapterA) Deliver(orderID string) error {
	itemID, err := validation.ParseNumericID(orderID, "orderID")
	if err != nil {
		return err
	}
	a.service.ShipItem(itemID)
	return nil
}

func (a *LogisticsAdapterA) Status(orderID string) (string, error) {
	shipmentID, err := validation.ParseNumericID(orderID, "orderID")
	if err != nil {
		return "", err
	}
	return a.service.TrackShipment(shipmentID), nil
}

// LogisticsAdapterB 把订单号原样作为包裹信息/追踪码转发给物流 B
type LogisticsAdapterB struct {
	service LogisticsBClient
}

func NewLogisticsAdapterB(service LogisticsBClient) *LogisticsAdapterB {
	return &LogisticsAdapterB{service: service}
}

func (a *LogisticsAdapterB) Deliver(orderID string) error {
	a.service.SendPackage(orderID)
	return nil
}

func (a *LogisticsAdapterB) Status(orderID string) (string, error) {
	return a.service.CheckPackageStatus(orderID), nil
}
