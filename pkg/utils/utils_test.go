package utils

import (
	"strings"
	"testing"
)

// TestCrypt bcrypt哈希校验往返 错密码必须校验失败
func TestCrypt(t *testing.T) {
	hashed, err := Crypt("Passw0rd!")
	if err != nil {
		t.Fatalf("Crypt failed: %v", err)
	}
	if hashed == "Passw0rd!" {
		t.Fatal("password stored in plain text")
	}
	if _, ok := VerifyPassword("Passw0rd!", hashed); !ok {
		t.Error("correct password rejected")
	}
	if _, ok := VerifyPassword("wrong", hashed); ok {
		t.Error("wrong password accepted")
	}
}

// TestSnowflake 同一节点连续生成的id必须唯一且递增
func TestSnowflake(t *testing.T) {
	sf, err := NewSnowflake(1, 1)
	if err != nil {
		t.Fatalf("NewSnowflake failed: %v", err)
	}

	const n = 10000
	seen := make(map[int64]struct{}, n)
	var last int64
	for i := 0; i < n; i++ {
		id := sf.GenerateID()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = struct{}{}
		if id <= last {
			t.Fatalf("id not increasing: %d after %d", id, last)
		}
		last = id
	}

	_, datacenterID, workerID, _ := sf.ParseID(last)
	if workerID != 1 || datacenterID != 1 {
		t.Errorf("ParseID = worker %d datacenter %d, want 1/1", workerID, datacenterID)
	}
}

func TestSnowflakeInvalidWorker(t *testing.T) {
	if _, err := NewSnowflake(-1, 0); err == nil {
		t.Error("negative worker id accepted")
	}
	if _, err := NewSnowflake(32, 0); err == nil {
		t.Error("out of range worker id accepted")
	}
}

// TestTransfer jwt claims里的数值是float64 要能转回int64
func TestTransfer(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want int64
	}{
		{"int64", int64(42), 42},
		{"float64", float64(1234567), 1234567},
		{"string", "99", 99},
		{"bad string", "abc", -1},
		{"nil", nil, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Transfer(c.in); got != c.want {
				t.Errorf("Transfer(%v) = %d, want %d", c.in, got, c.want)
			}
		})
	}
}

// TestThumnailName 并发发布视频时各自落到不同的临时文件
func TestThumnailName(t *testing.T) {
	a, b := thumnailName(), thumnailName()
	if a == b {
		t.Errorf("two thumnail names collide: %q", a)
	}
	if !strings.HasPrefix(a, "thumnail_") || !strings.HasSuffix(a, ".jpg") {
		t.Errorf("unexpected thumnail name %q", a)
	}
}

func TestConvertStringToInt64(t *testing.T) {
	if v, err := ConvertStringToInt64("123456789"); err != nil || v != 123456789 {
		t.Errorf("ConvertStringToInt64 = %d, %v", v, err)
	}
	if _, err := ConvertStringToInt64("not-a-number"); err == nil {
		t.Error("invalid input did not return error")
	}
}
