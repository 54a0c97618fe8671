package controllers

import (
	"errors"
	"net/http"
	"strings"

	"jasit-store/libs"
	"jasit-store/models"
	"jasit-store/services"
	"jasit-store/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	products      *services.ProductService
	maxUploadSize int64
}

func NewProductController(products *services.ProductService, maxUploadSize int64) *ProductController {
	return &ProductController{products: products, maxUploadSize: maxUploadSize}
}

// @Summary Get all products
// @Description List products, newest first, optionally filtered by category
// @Tags Products
// @Produce json
// @Param category query string false "Category"
// @Success 200 {object} models.Response{data=[]models.Product}
// @Failure 500 {object} models.ErrorResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	products, err := ctrl.products.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		fail(c, err, "Gagal memuat data produk")
		return
	}
	ok(c, http.StatusOK, "Daftar produk", products)
}

// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response{data=models.Product}
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			failRedirect(c, err, "Produk tidak ditemukan", "/products")
			return
		}
		fail(c, err, "Gagal memuat data produk")
		return
	}
	ok(c, http.StatusOK, "Detail produk", product)
}

// @Summary Get all categories
// @Description Distinct categories of the catalog
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response{data=[]string}
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.products.Categories(c.Request.Context())
	if err != nil {
		fail(c, err, "Gagal memuat data kategori")
		return
	}
	ok(c, http.StatusOK, "Daftar kategori", categories)
}

// @Summary Create product
// @Tags Admin
// @Security BearerAuth
// @Accept json,mpfd
// @Produce json
// @Param name formData string true "Name"
// @Param description formData string false "Description"
// @Param price formData string true "Price"
// @Param category formData string true "Category"
// @Param features formData []string false "Features"
// @Param image formData file false "Product image"
// @Success 201 {object} models.Response{data=models.Product}
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	img, closeImg, err := ctrl.formImage(c)
	if err != nil {
		fail(c, err, "Gagal membaca gambar")
		return
	}
	defer closeImg()

	product, err := ctrl.products.Create(c.Request.Context(), req, img)
	if err != nil {
		fail(c, err, "Gagal menambahkan produk")
		return
	}
	ok(c, http.StatusCreated, "Produk berhasil ditambahkan", product)
}

// @Summary Update product
// @Description Partial update. A new image replaces the old one only after the row is saved
// @Tags Admin
// @Security BearerAuth
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Product ID"
// @Param name formData string false "Name"
// @Param description formData string false "Description"
// @Param price formData string false "Price"
// @Param category formData string false "Category"
// @Param features formData []string false "Features"
// @Param image formData file false "Product image"
// @Success 200 {object} models.Response{data=models.Product}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	img, closeImg, err := ctrl.formImage(c)
	if err != nil {
		fail(c, err, "Gagal membaca gambar")
		return
	}
	defer closeImg()

	product, err := ctrl.products.Update(c.Request.Context(), c.Param("id"), req, img)
	if err != nil {
		fail(c, err, "Gagal memperbarui produk")
		return
	}
	ok(c, http.StatusOK, "Produk berhasil diperbarui", product)
}

// @Summary Delete product
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	if err := ctrl.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "Gagal menghapus produk")
		return
	}
	ok(c, http.StatusOK, "Produk berhasil dihapus", nil)
}

// @Summary Upload product image
// @Tags Admin
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/uploads [post]
func (ctrl *ProductController) UploadImage(c *gin.Context) {
	img, closeImg, err := ctrl.formImage(c)
	if err != nil {
		fail(c, err, "Gagal membaca gambar")
		return
	}
	defer closeImg()
	if img == nil {
		fail(c, utils.InvalidInput("File gambar wajib diunggah"), "")
		return
	}

	url, err := ctrl.products.UploadImage(c.Request.Context(), *img)
	if err != nil {
		fail(c, err, "Gagal mengunggah gambar")
		return
	}
	ok(c, http.StatusCreated, "Gambar berhasil diunggah", gin.H{"url": url})
}

// formImage opens the optional "image" part of a multipart form. img is nil
// when the request carries no file.
func (ctrl *ProductController) formImage(c *gin.Context) (*services.ImageUpload, func(), error) {
	noop := func() {}
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, noop, nil
	}

	header, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, utils.InvalidInput("File gambar tidak valid")
	}
	if err := libs.ValidateImage(header, ctrl.maxUploadSize); err != nil {
		return nil, noop, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, err
	}
	return &services.ImageUpload{File: file, Filename: header.Filename}, func() { file.Close() }, nil
}
