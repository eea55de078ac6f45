package dao

import (
	"ding-dong-api/models"

	"gorm.io/gorm"
)

func driverQuery(db *gorm.DB) *gorm.DB {
	return db.Preload("Orders.Dishes")
}

func (s *Store) GetDriver(id uint) (*models.Driver, error) {
	var driver models.Driver
	if err := driverQuery(s.DB).First(&driver, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &driver, nil
}

// GetDriverOfOrder resolves the driver assigned to an order. Fails with
// ErrNotFound when either the order or its driver is missing.
func (s *Store) GetDriverOfOrder(orderID uint) (*models.Driver, error) {
	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return s.GetDriver(order.DriverID)
}

func (s *Store) CreateDriver(name, licensePlateNumber string) (*models.Driver, error) {
	driver := models.Driver{
		Name:               name,
		LicensePlateNumber: licensePlateNumber,
	}
	if err := s.DB.Create(&driver).Error; err != nil {
		return nil, err
	}
	return s.GetDriver(driver.ID)
}

// DeleteDriver removes the driver row only; orders keep their driver
// reference.
func (s *Store) DeleteDriver(id uint) (*models.Driver, error) {
	driver, err := s.GetDriver(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Delete(&models.Driver{}, id).Error; err != nil {
		return nil, err
	}
	return driver, nil
}
