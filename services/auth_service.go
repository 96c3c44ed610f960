package services

import (
	"errors"

	"github.com/HarshCode115/AapdaRakshak/config"
	"github.com/HarshCode115/AapdaRakshak/models"
	"github.com/HarshCode115/AapdaRakshak/utils"
)

func RegisterUser(name, email, password, mobileNo string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		MobileNo: mobileNo,
	}

	result := config.DB.Create(&user)
	return result.Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.Email)
}
