package controllers

import (
	"net/http"

	"github.com/HarshCode115/AapdaRakshak/services"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	MobileNo string `json:"mobileno"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "flag": false})
		return
	}

	if err := services.RegisterUser(input.Name, input.Email, input.Password, input.MobileNo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "registration failed", "flag": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful", "flag": true})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "flag": false})
		return
	}

	token, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password", "flag": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "flag": true})
}
