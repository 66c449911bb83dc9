package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddItem(t *testing.T) {
	c := New("visitor-1")
	lipstickID := uuid.New()
	boxID := uuid.New()

	t.Run("adding twice bumps quantity instead of duplicating", func(t *testing.T) {
		c.AddItem(lipstickID, "LP-001", "口红管", "/uploads/lp.jpg")
		c.AddItem(lipstickID, "LP-001", "口红管", "/uploads/lp.jpg")

		require.Len(t, c.Items, 1)
		assert.Equal(t, 2, c.Items[0].Quantity)
		assert.Equal(t, 2, c.TotalCount())
	})

	t.Run("distinct products keep insertion order", func(t *testing.T) {
		c.AddItem(boxID, "BX-001", "气垫盒", "")

		require.Len(t, c.Items, 2)
		assert.Equal(t, "LP-001", c.Items[0].ProductCode)
		assert.Equal(t, "BX-001", c.Items[1].ProductCode)
		assert.Equal(t, 3, c.TotalCount())
	})
}

func TestCart_RemoveItem(t *testing.T) {
	c := New("visitor-1")
	id := uuid.New()
	c.AddItem(id, "LP-001", "口红管", "")

	t.Run("removes existing line", func(t *testing.T) {
		c.RemoveItem(id)
		assert.True(t, c.IsEmpty())
	})

	t.Run("absent product is a no-op", func(t *testing.T) {
		c.RemoveItem(uuid.New())
		assert.True(t, c.IsEmpty())
	})
}

func TestCart_SetQuantity(t *testing.T) {
	id := uuid.New()

	t.Run("sets a positive quantity", func(t *testing.T) {
		c := New("visitor-1")
		c.AddItem(id, "LP-001", "口红管", "")
		c.SetQuantity(id, 500)

		assert.Equal(t, 500, c.Items[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		c := New("visitor-1")
		c.AddItem(id, "LP-001", "口红管", "")
		c.SetQuantity(id, 0)

		assert.True(t, c.IsEmpty())
	})

	t.Run("negative removes the line", func(t *testing.T) {
		c := New("visitor-1")
		c.AddItem(id, "LP-001", "口红管", "")
		c.SetQuantity(id, -3)

		assert.True(t, c.IsEmpty())
	})
}

func TestCart_Clear(t *testing.T) {
	c := New("visitor-1")
	c.AddItem(uuid.New(), "LP-001", "口红管", "")
	c.AddItem(uuid.New(), "BX-001", "气垫盒", "")

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalCount())
}

func TestValidateCartID(t *testing.T) {
	assert.NoError(t, ValidateCartID("glam-cart-8f2a"))
	assert.Error(t, ValidateCartID(""))

	long := make([]byte, 65)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, ValidateCartID(string(long)))
}

func TestNewInquiry(t *testing.T) {
	t.Run("freezes cart lines", func(t *testing.T) {
		c := New("visitor-1")
		c.AddItem(uuid.New(), "LP-001", "口红管", "/uploads/lp.jpg")
		c.SetQuantity(c.Items[0].ProductID, 1000)

		inquiry, err := NewInquiry(c, ContactInfo{Name: "王女士", Phone: "13800000000"})

		require.NoError(t, err)
		assert.Equal(t, InquiryStatusSubmitted, inquiry.Status)
		assert.Regexp(t, `^INQ-\d{8}-[0-9A-F]{6}$`, inquiry.Number)
		require.Len(t, inquiry.Items, 1)
		assert.Equal(t, "LP-001", inquiry.Items[0].ProductCode)
		assert.Equal(t, 1000, inquiry.Items[0].Quantity)
		assert.Equal(t, inquiry.ID, inquiry.Items[0].InquiryID)
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		_, err := NewInquiry(New("visitor-1"), ContactInfo{})
		assert.ErrorContains(t, err, "no items")
	})
}

func TestInquiry_SetStatus(t *testing.T) {
	c := New("visitor-1")
	c.AddItem(uuid.New(), "LP-001", "口红管", "")
	inquiry, err := NewInquiry(c, ContactInfo{})
	require.NoError(t, err)

	require.NoError(t, inquiry.SetStatus(InquiryStatusQuoted))
	assert.Equal(t, InquiryStatusQuoted, inquiry.Status)

	assert.Error(t, inquiry.SetStatus("shipped"))
}
