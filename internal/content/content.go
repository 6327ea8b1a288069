// Package content holds the marketing copy served by the public pages.  It
// is compiled in: the pages are static and change with deployments, not
// with backend data.
package content

import "time"

// Post is a blog article.
type Post struct {
	Slug      string
	Title     string
	Excerpt   string
	Body      []string // paragraphs
	Author    string
	Published time.Time
	Cover     string
}

// Testimonial is a customer quote shown on the home and testimonial pages.
type Testimonial struct {
	Name   string
	City   string
	Rating int
	Quote  string
}

// Section is one numbered part of the terms page.
type Section struct {
	Title string
	Items []string
}

var posts = []Post{
	{
		Slug:      "tips-memilih-mobil-untuk-mudik",
		Title:     "Tips Memilih Mobil Sewaan untuk Mudik",
		Excerpt:   "Kapasitas, transmisi, dan opsi sopir: hal yang perlu dicek sebelum menyewa mobil untuk perjalanan jauh.",
		Author:    "Tim Rental",
		Published: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Cover:     "/static/img/blog-mudik.jpg",
		Body: []string{
			"Perjalanan mudik biasanya membawa banyak penumpang dan barang. Pilih mobil dengan kapasitas minimal tujuh kursi bila rombongan lebih dari empat orang.",
			"Transmisi otomatis lebih nyaman di jalur macet, sedangkan manual lebih hemat di jalur pegunungan. Sesuaikan dengan pengemudi yang akan bergantian menyetir.",
			"Untuk perjalanan di atas delapan jam, pertimbangkan paket dengan sopir agar semua penumpang bisa beristirahat.",
		},
	},
	{
		Slug:      "cara-menggunakan-kode-promo",
		Title:     "Cara Menggunakan Kode Promo",
		Excerpt:   "Kode promo bisa berupa potongan nominal atau persentase. Begini cara membaca syaratnya.",
		Author:    "Tim Rental",
		Published: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		Cover:     "/static/img/blog-promo.jpg",
		Body: []string{
			"Setiap promo memiliki minimum transaksi, batas potongan maksimal, dan kuota pemakaian. Promo persentase dihitung dari total sewa lalu dibatasi oleh potongan maksimal.",
			"Cek tanggal berakhirnya promo di halaman Promo pada dashboard Anda sebelum melakukan pemesanan.",
		},
	},
	{
		Slug:      "dokumen-yang-dibutuhkan-untuk-sewa-lepas-kunci",
		Title:     "Dokumen untuk Sewa Lepas Kunci",
		Excerpt:   "KTP, SIM A yang masih berlaku, dan dokumen pendukung lain yang kami minta sebelum serah terima.",
		Author:    "Tim Rental",
		Published: time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC),
		Cover:     "/static/img/blog-dokumen.jpg",
		Body: []string{
			"Sewa lepas kunci mensyaratkan KTP dan SIM A atas nama penyewa. Foto kedua dokumen diunggah melalui halaman pengaturan akun.",
			"Untuk penyewa luar kota, kami dapat meminta dokumen pendukung tambahan seperti kartu identitas kerja.",
		},
	},
}

var testimonials = []Testimonial{
	{Name: "Rina A.", City: "Bandung", Rating: 5, Quote: "Mobil bersih, serah terima tepat waktu, dan proses pemesanannya cepat."},
	{Name: "Dimas P.", City: "Yogyakarta", Rating: 5, Quote: "Sopirnya ramah dan hafal rute wisata. Sangat membantu untuk liburan keluarga."},
	{Name: "Sari W.", City: "Jakarta", Rating: 4, Quote: "Harga transparan, promo akhir pekan lumayan hemat."},
	{Name: "Andi K.", City: "Semarang", Rating: 5, Quote: "Sudah tiga kali sewa untuk perjalanan dinas, selalu lancar."},
}

var terms = []Section{
	{Title: "Pemesanan", Items: []string{
		"Pemesanan dianggap sah setelah pembayaran uang muka dikonfirmasi.",
		"Perubahan jadwal dapat dilakukan paling lambat 24 jam sebelum waktu sewa.",
	}},
	{Title: "Pembayaran", Items: []string{
		"Pelunasan dilakukan sebelum serah terima kendaraan.",
		"Potongan promo hanya berlaku sesuai syarat yang tercantum pada kode promo.",
	}},
	{Title: "Penggunaan Kendaraan", Items: []string{
		"Kendaraan tidak boleh digunakan untuk kegiatan yang melanggar hukum.",
		"Kerusakan akibat kelalaian penyewa menjadi tanggung jawab penyewa.",
	}},
	{Title: "Pembatalan", Items: []string{
		"Pembatalan lebih dari 48 jam sebelum sewa mendapat pengembalian penuh uang muka.",
		"Pembatalan kurang dari 48 jam dikenakan biaya 50% dari uang muka.",
	}},
}

// Posts returns blog posts, newest first.
func Posts() []Post {
	out := make([]Post, len(posts))
	for i := range posts {
		out[len(posts)-1-i] = posts[i]
	}
	return out
}

// PostBySlug finds a post.
func PostBySlug(slug string) (Post, bool) {
	for _, p := range posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}

// Testimonials returns all customer quotes.
func Testimonials() []Testimonial { return testimonials }

// Terms returns the terms and conditions sections.
func Terms() []Section { return terms }
