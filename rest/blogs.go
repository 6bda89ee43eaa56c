package rest

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
)

// Blog is a published article from the public blog.
type Blog struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
	Author    string `json:"author,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Blogs lists the public blog posts.
func (c *Client) Blogs(ctx context.Context) ([]Blog, error) {
	var blogs []Blog
	if err := c.get(ctx, RouteBlogs, &blogs); err != nil {
		return nil, errors.Wrap(err, "[Client.Blogs]")
	}
	return blogs, nil
}

// AdminCreateBlog publishes a blog post. ADMIN only.
func (c *Client) AdminCreateBlog(ctx context.Context, blog Blog) (*Blog, error) {
	var created Blog
	if err := c.post(ctx, RouteAdminBlogs, blog, &created); err != nil {
		return nil, errors.Wrap(err, "[Client.AdminCreateBlog]")
	}
	return &created, nil
}

// AdminDeleteBlog removes a blog post. ADMIN only.
func (c *Client) AdminDeleteBlog(ctx context.Context, blogID string) error {
	if err := c.delete(ctx, RouteAdminBlogs+"/"+url.PathEscape(blogID)); err != nil {
		return errors.Wrap(err, "[Client.AdminDeleteBlog]")
	}
	return nil
}
