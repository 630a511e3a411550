package fakeappliance

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Query parameters that never filter items.
var controlParams = map[string]bool{
	"max": true, "offset": true, "sort": true, "direction": true, "phrase": true,
	"includeLineItems": true, "includeTotals": true,
}

func (s *Server) list(c *gin.Context, col *collection) {
	ids := make([]int64, 0, len(col.items))
	for id := range col.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	query := c.Request.URL.Query()
	phrase := strings.ToLower(query.Get("phrase"))
	var matches []map[string]any
	for _, id := range ids {
		item := col.items[id]
		if phrase != "" && !strings.Contains(strings.ToLower(str(item[col.nameField])), phrase) {
			continue
		}
		if !matchesFilters(item, query) {
			continue
		}
		matches = append(matches, item)
	}

	limit, offset := 25, 0
	if v, err := strconv.Atoi(query.Get("max")); err == nil && v > 0 {
		limit = v
	}
	if v, err := strconv.Atoi(query.Get("offset")); err == nil && v > 0 {
		offset = v
	}
	page := []map[string]any{}
	if offset < len(matches) {
		end := offset + limit
		if end > len(matches) {
			end = len(matches)
		}
		page = matches[offset:end]
	}

	c.JSON(http.StatusOK, gin.H{
		col.listKey: page,
		"meta": gin.H{"size": len(page), "total": len(matches), "offset": offset, "max": limit},
	})
}

func matchesFilters(item map[string]any, query map[string][]string) bool {
	for key, values := range query {
		if controlParams[key] || len(values) == 0 {
			continue
		}
		if str(item[key]) != values[0] {
			return false
		}
	}
	return true
}

func (s *Server) get(c *gin.Context, col *collection, id int64) {
	item, ok := col.items[id]
	if !ok {
		notFound(c, col)
		return
	}
	c.JSON(http.StatusOK, gin.H{col.key: item})
}

func (s *Server) create(c *gin.Context, col *collection) {
	obj := bodyObject(c, col)
	if str(obj[col.nameField]) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"msg":     "Unable to save " + col.key,
			"errors":  gin.H{col.nameField: "required"},
		})
		return
	}
	delete(obj, "id")
	id := col.insert(obj)
	c.JSON(http.StatusOK, gin.H{"success": true, col.key: col.items[id]})
}

func (s *Server) update(c *gin.Context, col *collection, id int64) {
	item, ok := col.items[id]
	if !ok {
		notFound(c, col)
		return
	}
	for k, v := range bodyObject(c, col) {
		if k != "id" {
			item[k] = v
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, col.key: item})
}

func (s *Server) destroy(c *gin.Context, col *collection, id int64) {
	if _, ok := col.items[id]; !ok {
		notFound(c, col)
		return
	}
	delete(col.items, id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func notFound(c *gin.Context, col *collection) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "msg": col.key + " not found"})
}

// bodyObject returns the object under the collection key of the recorded body.
func bodyObject(c *gin.Context, col *collection) map[string]any {
	body, _ := c.Get("body")
	if m, ok := body.(map[string]any); ok {
		if obj, ok := m[col.key].(map[string]any); ok {
			return obj
		}
	}
	return map[string]any{}
}

func str(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func toInt64(v any) int64 {
	switch val := v.(type) {
	case int:
		return int64(val)
	case int64:
		return val
	case float64:
		return int64(val)
	}
	return 0
}
