package gateway

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/api"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/gofiber/fiber/v2"
)

func parse(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: malformed request body", common.ErrInvalidInput)
	}
	return nil
}

func (s *HTTPServer) signup(c *fiber.Ctx) error {
	var req api.SignupRequest
	if err := parse(c, &req); err != nil {
		return s.fail(c, "signup", err)
	}

	token, id, err := s.services.Users.Signup(c.UserContext(), req.Username, req.Email, req.Password)
	if err != nil {
		return s.fail(c, "signup", err)
	}

	s.logger.Info(c.UserContext(), "Signed up", "user_id", id)
	return c.JSON(api.TokenResponse{Success: true, Token: token})
}

func (s *HTTPServer) login(c *fiber.Ctx) error {
	var req api.LoginRequest
	if err := parse(c, &req); err != nil {
		return s.fail(c, "login", err)
	}

	token, err := s.services.Users.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return s.fail(c, "login", err)
	}

	return c.JSON(api.TokenResponse{Success: true, Token: token})
}

func (s *HTTPServer) cartItem(c *fiber.Ctx, op string, apply func(c *fiber.Ctx, userID, key string) (models.Cart, error)) error {
	userID, err := currentUser(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	var req api.CartItemRequest
	if err := parse(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cart, err := apply(c, userID, string(req.ItemID))
	if err != nil {
		return s.fail(c, op, err)
	}

	return c.JSON(api.CartResponse{Success: true, CartData: cart})
}

func (s *HTTPServer) addToCart(c *fiber.Ctx) error {
	return s.cartItem(c, "add to cart", func(c *fiber.Ctx, userID, key string) (models.Cart, error) {
		return s.services.Carts.AddItem(c.UserContext(), userID, key)
	})
}

func (s *HTTPServer) removeFromCart(c *fiber.Ctx) error {
	return s.cartItem(c, "remove from cart", func(c *fiber.Ctx, userID, key string) (models.Cart, error) {
		return s.services.Carts.RemoveItem(c.UserContext(), userID, key)
	})
}

func (s *HTTPServer) loadCart(c *fiber.Ctx) (models.Cart, error) {
	userID, err := currentUser(c)
	if err != nil {
		return nil, err
	}
	return s.services.Carts.GetCart(c.UserContext(), userID)
}

func (s *HTTPServer) getCart(c *fiber.Ctx) error {
	cart, err := s.loadCart(c)
	if err != nil {
		return s.fail(c, "get cart", err)
	}
	return c.JSON(api.CartResponse{Success: true, CartData: cart})
}

// getCartData answers POST /getcart with the bare item map.
func (s *HTTPServer) getCartData(c *fiber.Ctx) error {
	cart, err := s.loadCart(c)
	if err != nil {
		return s.fail(c, "get cart", err)
	}
	return c.JSON(cart)
}

func (s *HTTPServer) addProduct(c *fiber.Ctx) error {
	var req api.AddProductRequest
	if err := parse(c, &req); err != nil {
		return s.fail(c, "add product", err)
	}

	p, err := s.services.Catalog.AddProduct(c.UserContext(), req.Model())
	if err != nil {
		return s.fail(c, "add product", err)
	}

	s.logger.Info(c.UserContext(), "Product added", "id", p.ID, "name", p.Name)
	return c.JSON(api.AddProductResponse{Success: true, Name: p.Name, Product: api.ProductFromModel(p)})
}

func (s *HTTPServer) removeProduct(c *fiber.Ctx) error {
	var req api.RemoveProductRequest
	if err := parse(c, &req); err != nil {
		return s.fail(c, "remove product", err)
	}

	if err := s.services.Catalog.RemoveProduct(c.UserContext(), req.ID); err != nil {
		return s.fail(c, "remove product", err)
	}

	return c.JSON(api.RemoveProductResponse{Success: true, ID: req.ID})
}

func (s *HTTPServer) allProducts(c *fiber.Ctx) error {
	items, err := s.services.Catalog.AllProducts(c.UserContext())
	if err != nil {
		return s.fail(c, "all products", err)
	}
	return c.JSON(api.ProductsFromModels(items))
}

func (s *HTTPServer) newCollections(c *fiber.Ctx) error {
	items, err := s.services.Catalog.NewCollections(c.UserContext())
	if err != nil {
		return s.fail(c, "new collections", err)
	}
	return c.JSON(api.ProductsFromModels(items))
}

func (s *HTTPServer) popularInWomen(c *fiber.Ctx) error {
	items, err := s.services.Catalog.PopularInWomen(c.UserContext())
	if err != nil {
		return s.fail(c, "popular in women", err)
	}
	return c.JSON(api.ProductsFromModels(items))
}

// upload stores the multipart file field "product".
func (s *HTTPServer) upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("product")
	if err != nil {
		return s.fail(c, "upload", fmt.Errorf("%w: no file uploaded", common.ErrInvalidInput))
	}

	f, err := fh.Open()
	if err != nil {
		return s.fail(c, "upload", err)
	}
	defer f.Close()

	url, err := s.services.Images.Upload(c.UserContext(), "product", fh.Filename, fh.Header.Get(fiber.HeaderContentType), f)
	if err != nil {
		return s.fail(c, "upload", err)
	}

	return c.JSON(api.UploadImageResponse{Success: true, ImageURL: url})
}

// image redirects to a short-lived presigned URL of the stored object.
func (s *HTTPServer) image(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Params("name"))

	url, err := s.services.Images.PresignDownload(c.UserContext(), name)
	if err != nil {
		return s.fail(c, "image", err)
	}

	return c.Redirect(url, fiber.StatusTemporaryRedirect)
}
